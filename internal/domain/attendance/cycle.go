package attendance

// Cycle is the ordered status progression a click-to-cycle toggle walks
// through. Advancing past the last status returns to unset, and advancing
// from unset yields the first status.
type Cycle []Status

var (
	// CycleFull is used by grid cells where "present" is an explicit step.
	CycleFull = Cycle{StatusPresent, StatusHolidays, StatusSickness, StatusTraining, StatusHomeworking}

	// CycleLeave is used by the per-person calendar, where present is the
	// implicit default and only exceptional statuses are cycled.
	CycleLeave = Cycle{StatusHolidays, StatusSickness, StatusTraining, StatusHomeworking}
)

// CycleByName resolves the caller-selected cycle variant.
func CycleByName(name string) (Cycle, bool) {
	switch name {
	case "full":
		return CycleFull, true
	case "leave":
		return CycleLeave, true
	}
	return nil, false
}

// Next returns the status following current in the cycle. A status not in
// the cycle advances to unset, so a cell showing a value the cycle cannot
// itself produce still clears on the next click.
func (c Cycle) Next(current Status) Status {
	if len(c) == 0 {
		return StatusNone
	}
	if current == StatusNone {
		return c[0]
	}
	for i, s := range c {
		if s == current && i+1 < len(c) {
			return c[i+1]
		}
	}
	return StatusNone
}
