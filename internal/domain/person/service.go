package person

import "context"

// PersonService manages the roster.
type PersonService interface {
	// Create registers a new person from the add-person form.
	Create(ctx context.Context, req CreatePersonRequest) (Person, error)

	// List returns the roster ordered by trigramme.
	List(ctx context.Context) ([]Person, error)

	// GetByID returns one person.
	GetByID(ctx context.Context, id int64) (Person, error)

	// GetByTrigramme returns one person by trigramme, case-insensitive.
	GetByTrigramme(ctx context.Context, trigramme string) (Person, error)

	// UpdateCapacity sets one person's availability fraction.
	UpdateCapacity(ctx context.Context, id int64, capacity float64) (Person, error)
}
