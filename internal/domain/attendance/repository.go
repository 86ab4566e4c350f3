package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// conflict key is (person_id, date, period); Upsert replaces an existing
// record's status in place.
type AttendanceRepository interface {
	// ListByPersonAndDate retrieves all records for one person on one date
	// (at most three, one per period).
	ListByPersonAndDate(ctx context.Context, personID int64, date time.Time) ([]Record, error)

	// ListByMonth retrieves records in [first day, last day] of the month,
	// optionally filtered to one person.
	ListByMonth(ctx context.Context, personID *int64, month time.Month, year int) ([]Record, error)

	// Upsert creates or updates the record at (personID, date, period).
	Upsert(ctx context.Context, personID int64, date time.Time, period Period, status Status) (Record, error)

	// Delete removes the record at (personID, date, period); absent is a no-op.
	Delete(ctx context.Context, personID int64, date time.Time, period Period) error
}

// TxManager runs fn inside a storage transaction; the repositories pick
// the transaction up from ctx. The clear-write-merge sequence of a
// SetPeriod call must run under a single transaction so a partial failure
// never leaves a day with both representations populated.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
