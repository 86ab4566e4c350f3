package calendar

import "time"

// SprintInfo describes where a date falls within the fixed 14-day sprint
// cycle counted from a configured epoch.
type SprintInfo struct {
	Number  int
	IsStart bool
	IsEnd   bool
}

// Sprint returns the sprint window containing date. Sprints are numbered
// from 1 starting at epoch; dates before the epoch report sprint 0,
// meaning tracking had not begun.
func Sprint(date, epoch time.Time) SprintInfo {
	days := int(Midnight(date).Sub(Midnight(epoch)).Hours() / 24)
	if days < 0 {
		return SprintInfo{}
	}

	offset := days % 14
	return SprintInfo{
		Number:  days/14 + 1,
		IsStart: offset == 0,
		IsEnd:   offset == 13,
	}
}
