package attendance

import (
	"time"
)

// Status is an attendance state for a day or half-day. The zero value
// StatusNone means "not set" and is never stored.
type Status string

const (
	StatusNone        Status = ""
	StatusPresent     Status = "present"
	StatusSickness    Status = "sickness"
	StatusHolidays    Status = "holidays"
	StatusTraining    Status = "training"
	StatusHomeworking Status = "homeworking"
)

// Valid reports whether s is one of the storable statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusSickness, StatusHolidays, StatusTraining, StatusHomeworking:
		return true
	}
	return false
}

// Period scopes a record to the whole day or to one half of it.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodFullDay   Period = "full_day"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodFullDay:
		return true
	}
	return false
}

// Record is one persisted attendance fact. At most one record exists per
// (person, date, period); a person never holds a full_day record and a
// half-day record for the same date at once.
type Record struct {
	ID        string
	PersonID  int64
	Date      time.Time
	Period    Period
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDay is the resolved view of one (person, date): explicit
// records first, recurring-pattern fallback second. Recurrent marks a
// full-day value that came from a weekly pattern rather than a record;
// the flag is informational and never persisted.
type EffectiveDay struct {
	Morning   Status
	Afternoon Status
	FullDay   Status
	Recurrent bool
}

// Empty reports whether no slot holds a value.
func (d EffectiveDay) Empty() bool {
	return d.Morning == StatusNone && d.Afternoon == StatusNone && d.FullDay == StatusNone
}

// Slots is the explicit stored state of one (person, date), before any
// recurring-pattern fallback. It is what write planning operates on.
type Slots struct {
	Morning   Status
	Afternoon Status
	FullDay   Status
}

// Get returns the slot value for p.
func (s Slots) Get(p Period) Status {
	switch p {
	case PeriodMorning:
		return s.Morning
	case PeriodAfternoon:
		return s.Afternoon
	default:
		return s.FullDay
	}
}
