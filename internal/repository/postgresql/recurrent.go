package postgresql

import (
	"context"
	"fmt"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/pkg/database"
	"github.com/google/uuid"
)

type patternRepository struct {
	db *database.DB
}

func NewPatternRepository(db *database.DB) recurrent.PatternRepository {
	return &patternRepository{db: db}
}

// List implements recurrent.PatternRepository.
func (r *patternRepository) List(ctx context.Context, personID *int64) ([]recurrent.Pattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, person_id, day_of_week, status, created_at, updated_at
		FROM recurrent_attendance
		WHERE ($1::bigint IS NULL OR person_id = $1)
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurrent patterns: %w", err)
	}
	defer rows.Close()

	var patterns []recurrent.Pattern
	for rows.Next() {
		var (
			p      recurrent.Pattern
			status string
		)
		if err := rows.Scan(&p.ID, &p.PersonID, &p.Weekday, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recurrent pattern: %w", err)
		}
		p.Status = attendance.Status(status)
		patterns = append(patterns, p)
	}

	return patterns, rows.Err()
}

// Upsert implements recurrent.PatternRepository.
func (r *patternRepository) Upsert(ctx context.Context, personID int64, weekday int, status attendance.Status) (recurrent.Pattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recurrent_attendance (id, person_id, day_of_week, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id, day_of_week)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, person_id, day_of_week, status, created_at, updated_at
	`

	var (
		p     recurrent.Pattern
		gotSt string
	)
	err := q.QueryRow(ctx, query, uuid.NewString(), personID, weekday, string(status)).Scan(
		&p.ID, &p.PersonID, &p.Weekday, &gotSt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return recurrent.Pattern{}, fmt.Errorf("failed to upsert recurrent pattern: %w", err)
	}
	p.Status = attendance.Status(gotSt)

	return p, nil
}

// Delete implements recurrent.PatternRepository.
func (r *patternRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recurrent_attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurrent pattern: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recurrent.ErrPatternNotFound
	}

	return nil
}
