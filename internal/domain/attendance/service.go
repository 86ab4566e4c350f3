package attendance

import (
	"context"
	"time"
)

// AttendanceService is the reconciliation engine: it derives effective
// day states from records and recurring patterns, and applies writes with
// the full-day/half-day mutual exclusion and merge rules.
type AttendanceService interface {
	// ResolveDay computes the effective state of one (person, date).
	ResolveDay(ctx context.Context, personID int64, date time.Time) (EffectiveDay, error)

	// ResolveMonth computes effective states for every day of the month
	// that has one, keyed by YYYY-MM-DD.
	ResolveMonth(ctx context.Context, personID int64, month time.Month, year int) (map[string]EffectiveDay, error)

	// ListRecords returns the stored records of a month, optionally for
	// one person, without recurring-pattern resolution.
	ListRecords(ctx context.Context, personID *int64, month time.Month, year int) ([]Record, error)

	// SetPeriod writes status (StatusNone clears) to one period of a
	// working day, clearing the conflicting representation first and
	// collapsing matching half-days into a full-day record.
	SetPeriod(ctx context.Context, personID int64, date time.Time, period Period, status Status) (EffectiveDay, error)

	// Advance cycles the status at (person, date, period) one step.
	Advance(ctx context.Context, personID int64, date time.Time, period Period, cycle Cycle) (EffectiveDay, error)

	// MarkMonth sets status as full_day on every working day of the month.
	MarkMonth(ctx context.Context, personID int64, month time.Month, year int, status Status) (BulkResult, error)

	// MarkWeekday sets status as full_day on every working occurrence of
	// weekday (0 = Sunday) in the month.
	MarkWeekday(ctx context.Context, personID int64, month time.Month, year int, weekday int, status Status) (BulkResult, error)
}
