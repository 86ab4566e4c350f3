package desk

import (
	"context"
	"time"
)

// ReservationRepository defines data access for desk reservations. The
// conflict key is (desk_id, date).
type ReservationRepository interface {
	// Create inserts a reservation; a conflicting (desk, date) pair fails
	// with ErrDeskTaken.
	Create(ctx context.Context, r Reservation) (Reservation, error)

	// ListByDate retrieves all reservations for one date, ordered by desk.
	ListByDate(ctx context.Context, date time.Time) ([]Reservation, error)

	// Delete removes the reservation for (deskID, date).
	Delete(ctx context.Context, deskID string, date time.Time) error
}
