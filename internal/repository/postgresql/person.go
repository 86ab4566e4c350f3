package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type personRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepository{db: db}
}

// Create implements person.PersonRepository.
func (r *personRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO people (trigramme, role, team, nature, capacity, start_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.Trigramme,
		p.Role,
		p.Team,
		p.Nature,
		p.Capacity,
		p.StartDate,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return person.Person{}, person.ErrTrigrammeExists
		}
		return person.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return p, nil
}

// List implements person.PersonRepository.
func (r *personRepository) List(ctx context.Context) ([]person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, trigramme, role, team, nature, capacity, start_date, created_at
		FROM people
		ORDER BY trigramme
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		var p person.Person
		if err := rows.Scan(&p.ID, &p.Trigramme, &p.Role, &p.Team, &p.Nature, &p.Capacity, &p.StartDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// GetByID implements person.PersonRepository.
func (r *personRepository) GetByID(ctx context.Context, id int64) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, trigramme, role, team, nature, capacity, start_date, created_at
		FROM people
		WHERE id = $1
	`

	var p person.Person
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Trigramme, &p.Role, &p.Team, &p.Nature, &p.Capacity, &p.StartDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	return p, nil
}

// GetByTrigramme implements person.PersonRepository.
func (r *personRepository) GetByTrigramme(ctx context.Context, trigramme string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, trigramme, role, team, nature, capacity, start_date, created_at
		FROM people
		WHERE trigramme = $1
	`

	var p person.Person
	err := q.QueryRow(ctx, query, trigramme).Scan(&p.ID, &p.Trigramme, &p.Role, &p.Team, &p.Nature, &p.Capacity, &p.StartDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person by trigramme: %w", err)
	}

	return p, nil
}

// UpdateCapacity implements person.PersonRepository.
func (r *personRepository) UpdateCapacity(ctx context.Context, id int64, capacity float64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE people SET capacity = $1 WHERE id = $2`, capacity, id)
	if err != nil {
		return fmt.Errorf("failed to update capacity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}

	return nil
}
