package person

import (
	"context"
	"testing"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersonRepo struct {
	people map[int64]person.Person
	nextID int64
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{people: make(map[int64]person.Person), nextID: 1}
}

func (m *memPersonRepo) Create(_ context.Context, p person.Person) (person.Person, error) {
	for _, existing := range m.people {
		if existing.Trigramme == p.Trigramme {
			return person.Person{}, person.ErrTrigrammeExists
		}
	}
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	m.nextID++
	m.people[p.ID] = p
	return p, nil
}

func (m *memPersonRepo) List(_ context.Context) ([]person.Person, error) {
	out := make([]person.Person, 0, len(m.people))
	for _, p := range m.people {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPersonRepo) GetByID(_ context.Context, id int64) (person.Person, error) {
	p, ok := m.people[id]
	if !ok {
		return person.Person{}, person.ErrPersonNotFound
	}
	return p, nil
}

func (m *memPersonRepo) GetByTrigramme(_ context.Context, trigramme string) (person.Person, error) {
	for _, p := range m.people {
		if p.Trigramme == trigramme {
			return p, nil
		}
	}
	return person.Person{}, person.ErrPersonNotFound
}

func (m *memPersonRepo) UpdateCapacity(_ context.Context, id int64, capacity float64) error {
	p, ok := m.people[id]
	if !ok {
		return person.ErrPersonNotFound
	}
	p.Capacity = capacity
	m.people[id] = p
	return nil
}

func TestPersonService_Create_NormalizesTrigramme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPersonService(newMemPersonRepo())

	created, err := svc.Create(ctx, person.CreatePersonRequest{
		Trigramme: " abc ",
		Team:      "core",
		StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "ABC", created.Trigramme)
	assert.Equal(t, 1.0, created.Capacity)
	assert.Equal(t, 2024, created.StartDate.Year())
}

func TestPersonService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPersonService(newMemPersonRepo())

	cases := []struct {
		name string
		req  person.CreatePersonRequest
	}{
		{"missing trigramme", person.CreatePersonRequest{StartDate: "2024-01-15"}},
		{"trigramme too long", person.CreatePersonRequest{Trigramme: "ABCD", StartDate: "2024-01-15"}},
		{"bad start date", person.CreatePersonRequest{Trigramme: "ABC", StartDate: "soon"}},
		{"capacity out of range", person.CreatePersonRequest{Trigramme: "ABC", StartDate: "2024-01-15", Capacity: floatPtr(1.5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestPersonService_Create_DuplicateTrigramme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPersonService(newMemPersonRepo())

	_, err := svc.Create(ctx, person.CreatePersonRequest{Trigramme: "ABC", StartDate: "2024-01-15"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, person.CreatePersonRequest{Trigramme: "abc", StartDate: "2024-02-01"})
	assert.ErrorIs(t, err, person.ErrTrigrammeExists)
}

func TestPersonService_GetByTrigramme_CaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPersonService(newMemPersonRepo())

	created, err := svc.Create(ctx, person.CreatePersonRequest{Trigramme: "ABC", StartDate: "2024-01-15"})
	require.NoError(t, err)

	found, err := svc.GetByTrigramme(ctx, " abc ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByTrigramme(ctx, "ZZZ")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestPersonService_UpdateCapacity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPersonService(newMemPersonRepo())

	created, err := svc.Create(ctx, person.CreatePersonRequest{Trigramme: "ABC", StartDate: "2024-01-15"})
	require.NoError(t, err)

	updated, err := svc.UpdateCapacity(ctx, created.ID, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, updated.Capacity)

	_, err = svc.UpdateCapacity(ctx, created.ID, 2)
	assert.Error(t, err)

	_, err = svc.UpdateCapacity(ctx, 999, 0.5)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}
