package recurrent

import "context"

// PatternService manages recurring weekly defaults.
type PatternService interface {
	// List returns patterns, optionally for one person, ordered by weekday.
	List(ctx context.Context, personID *int64) ([]Pattern, error)

	// Upsert sets the default status for (person, weekday).
	Upsert(ctx context.Context, req UpsertPatternRequest) (Pattern, error)

	// Clear removes the pattern for (person, weekday) if one exists.
	Clear(ctx context.Context, personID int64, weekday int) error
}
