package person

import "context"

// PersonRepository defines data access for people. People are never
// deleted; capacity is the only mutable attribute in scope.
type PersonRepository interface {
	// Create inserts a new person and returns it with its assigned id.
	Create(ctx context.Context, p Person) (Person, error)

	// List retrieves all people ordered by trigramme.
	List(ctx context.Context) ([]Person, error)

	// GetByID retrieves one person by numeric id.
	GetByID(ctx context.Context, id int64) (Person, error)

	// GetByTrigramme retrieves one person by trigramme (upper-normalized).
	GetByTrigramme(ctx context.Context, trigramme string) (Person, error)

	// UpdateCapacity sets the capacity fraction for one person.
	UpdateCapacity(ctx context.Context, id int64, capacity float64) error
}
