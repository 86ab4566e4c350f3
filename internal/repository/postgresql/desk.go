package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/desk"
	"github.com/akachaad/office-pulse-2026/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type deskRepository struct {
	db *database.DB
}

func NewDeskRepository(db *database.DB) desk.ReservationRepository {
	return &deskRepository{db: db}
}

// Create implements desk.ReservationRepository.
func (r *deskRepository) Create(ctx context.Context, res desk.Reservation) (desk.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO desk_reservations (id, desk_id, person_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	res.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, res.ID, res.DeskID, res.PersonID, res.Date, res.StartTime, res.EndTime).Scan(&res.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return desk.Reservation{}, desk.ErrDeskTaken
		}
		return desk.Reservation{}, fmt.Errorf("failed to create desk reservation: %w", err)
	}

	return res, nil
}

// ListByDate implements desk.ReservationRepository.
func (r *deskRepository) ListByDate(ctx context.Context, date time.Time) ([]desk.Reservation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, desk_id, person_id, date, start_time, end_time, created_at
		FROM desk_reservations
		WHERE date = $1
		ORDER BY desk_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list desk reservations: %w", err)
	}
	defer rows.Close()

	var reservations []desk.Reservation
	for rows.Next() {
		var res desk.Reservation
		if err := rows.Scan(&res.ID, &res.DeskID, &res.PersonID, &res.Date, &res.StartTime, &res.EndTime, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan desk reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// Delete implements desk.ReservationRepository.
func (r *deskRepository) Delete(ctx context.Context, deskID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM desk_reservations WHERE desk_id = $1 AND date = $2`, deskID, date)
	if err != nil {
		return fmt.Errorf("failed to delete desk reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return desk.ErrReservationNotFound
	}

	return nil
}
