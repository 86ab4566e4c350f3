package recurrent

import (
	"context"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
)

// PatternRepository defines data access for recurring weekly patterns.
// The conflict key is (person_id, day_of_week).
type PatternRepository interface {
	// List retrieves patterns ordered by weekday, optionally filtered to
	// one person.
	List(ctx context.Context, personID *int64) ([]Pattern, error)

	// Upsert creates or updates the pattern at (personID, weekday).
	Upsert(ctx context.Context, personID int64, weekday int, status attendance.Status) (Pattern, error)

	// Delete removes a pattern by id.
	Delete(ctx context.Context, id string) error
}
