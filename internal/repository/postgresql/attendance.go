package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByPersonAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByPersonAndDate(ctx context.Context, personID int64, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, person_id, date, period, status, created_at, updated_at
		FROM attendance
		WHERE person_id = $1
		  AND date = $2
	`

	rows, err := q.Query(ctx, query, personID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByMonth(ctx context.Context, personID *int64, month time.Month, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := `
		SELECT id, person_id, date, period, status, created_at, updated_at
		FROM attendance
		WHERE date >= $1
		  AND date <= $2
		  AND ($3::bigint IS NULL OR person_id = $3)
		ORDER BY date, person_id, period
	`

	rows, err := q.Query(ctx, query, start, end, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, personID int64, date time.Time, period attendance.Period, status attendance.Status) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, person_id, date, period, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (person_id, date, period)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, person_id, date, period, status, created_at, updated_at
	`

	var (
		rec              attendance.Record
		gotPeriod, gotSt string
	)
	err := q.QueryRow(ctx, query, uuid.NewString(), personID, date, string(period), string(status)).Scan(
		&rec.ID, &rec.PersonID, &rec.Date, &gotPeriod, &gotSt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	rec.Period = attendance.Period(gotPeriod)
	rec.Status = attendance.Status(gotSt)

	return rec, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, personID int64, date time.Time, period attendance.Period) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM attendance
		WHERE person_id = $1
		  AND date = $2
		  AND period = $3
	`, personID, date, string(period))
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var (
			rec            attendance.Record
			period, status string
		)
		if err := rows.Scan(&rec.ID, &rec.PersonID, &rec.Date, &period, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Period = attendance.Period(period)
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}
