package attendance

import (
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/pkg/calendar"
)

// The functions in this file are the engine's decision logic. They touch
// no storage and take everything they need as arguments, so the merge,
// split and fallback rules can be tested without a database.

// SlotsFromRecords builds the explicit slot state of one (person, date)
// from its stored records. Later records win should duplicates ever
// appear, though the storage conflict key prevents that.
func SlotsFromRecords(records []attendance.Record) attendance.Slots {
	var s attendance.Slots
	for _, rec := range records {
		switch rec.Period {
		case attendance.PeriodMorning:
			s.Morning = rec.Status
		case attendance.PeriodAfternoon:
			s.Afternoon = rec.Status
		case attendance.PeriodFullDay:
			s.FullDay = rec.Status
		}
	}
	return s
}

// Resolve derives the effective day state from explicit slots and the
// person's pattern for the date's weekday. The pattern fills FullDay only
// when no explicit slot holds a value and the date is a working day;
// recurring patterns never produce half-day values.
func Resolve(slots attendance.Slots, pattern *recurrent.Pattern, date time.Time) attendance.EffectiveDay {
	day := attendance.EffectiveDay{
		Morning:   slots.Morning,
		Afternoon: slots.Afternoon,
		FullDay:   slots.FullDay,
	}

	if day.Empty() && pattern != nil && !calendar.IsNonWorkingDay(date) {
		day.FullDay = pattern.Status
		day.Recurrent = true
	}

	return day
}

// PatternForWeekday selects the pattern matching the date's weekday, or
// nil when the person has none.
func PatternForWeekday(patterns []recurrent.Pattern, date time.Time) *recurrent.Pattern {
	weekday := int(date.Weekday())
	for i := range patterns {
		if patterns[i].Weekday == weekday {
			return &patterns[i]
		}
	}
	return nil
}

// ApplyWrite returns the slot state after writing status to period.
// StatusNone clears. The full-day and half-day representations are
// mutually exclusive: writing one side drops the other. When both halves
// end up holding the same status the day collapses into a single
// full-day value.
func ApplyWrite(s attendance.Slots, period attendance.Period, status attendance.Status) attendance.Slots {
	switch period {
	case attendance.PeriodFullDay:
		s.Morning = attendance.StatusNone
		s.Afternoon = attendance.StatusNone
		s.FullDay = status
	case attendance.PeriodMorning, attendance.PeriodAfternoon:
		s.FullDay = attendance.StatusNone
		if period == attendance.PeriodMorning {
			s.Morning = status
		} else {
			s.Afternoon = status
		}
		if s.Morning != attendance.StatusNone && s.Morning == s.Afternoon {
			s.FullDay = s.Morning
			s.Morning = attendance.StatusNone
			s.Afternoon = attendance.StatusNone
		}
	}
	return s
}

// Op is one storage mutation derived from a slot transition.
type Op struct {
	Period attendance.Period
	Status attendance.Status
	Delete bool
}

// DiffSlots computes the mutations that turn before into after, deletes
// first so the conflicting representation is gone before anything new is
// inserted.
func DiffSlots(before, after attendance.Slots) []Op {
	periods := []attendance.Period{attendance.PeriodMorning, attendance.PeriodAfternoon, attendance.PeriodFullDay}

	var deletes, upserts []Op
	for _, p := range periods {
		prev, next := before.Get(p), after.Get(p)
		if prev == next {
			continue
		}
		if next == attendance.StatusNone {
			deletes = append(deletes, Op{Period: p, Delete: true})
		} else {
			upserts = append(upserts, Op{Period: p, Status: next})
		}
	}

	return append(deletes, upserts...)
}
