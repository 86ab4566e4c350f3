package desk

import (
	"context"
	"time"
)

// ReservationService manages the daily floor plan.
type ReservationService interface {
	// Reserve books a desk for a person on a date.
	Reserve(ctx context.Context, req ReserveRequest) (Reservation, error)

	// ListByDate returns the reservations of one date, ordered by desk.
	ListByDate(ctx context.Context, date time.Time) ([]Reservation, error)

	// Cancel frees (deskID, date).
	Cancel(ctx context.Context, deskID string, date time.Time) error
}
