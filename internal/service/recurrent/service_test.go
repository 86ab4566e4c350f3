package recurrent

import (
	"context"
	"testing"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPatternRepo struct {
	patterns map[string]recurrent.Pattern
}

func newMemPatternRepo() *memPatternRepo {
	return &memPatternRepo{patterns: make(map[string]recurrent.Pattern)}
}

func (m *memPatternRepo) List(_ context.Context, personID *int64) ([]recurrent.Pattern, error) {
	var out []recurrent.Pattern
	for _, p := range m.patterns {
		if personID == nil || p.PersonID == *personID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPatternRepo) Upsert(_ context.Context, personID int64, weekday int, status attendance.Status) (recurrent.Pattern, error) {
	for id, p := range m.patterns {
		if p.PersonID == personID && p.Weekday == weekday {
			p.Status = status
			m.patterns[id] = p
			return p, nil
		}
	}
	p := recurrent.Pattern{ID: uuid.NewString(), PersonID: personID, Weekday: weekday, Status: status}
	m.patterns[p.ID] = p
	return p, nil
}

func (m *memPatternRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.patterns[id]; !ok {
		return recurrent.ErrPatternNotFound
	}
	delete(m.patterns, id)
	return nil
}

type singlePersonRepo struct{}

func (singlePersonRepo) Create(_ context.Context, p person.Person) (person.Person, error) {
	return p, nil
}
func (singlePersonRepo) List(_ context.Context) ([]person.Person, error) { return nil, nil }
func (singlePersonRepo) GetByID(_ context.Context, id int64) (person.Person, error) {
	if id != 1 {
		return person.Person{}, person.ErrPersonNotFound
	}
	return person.Person{ID: 1, Trigramme: "ABC"}, nil
}
func (singlePersonRepo) GetByTrigramme(_ context.Context, _ string) (person.Person, error) {
	return person.Person{}, person.ErrPersonNotFound
}
func (singlePersonRepo) UpdateCapacity(_ context.Context, _ int64, _ float64) error { return nil }

func TestPatternService_UpsertReplacesSameWeekday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemPatternRepo()
	svc := NewPatternService(repo, singlePersonRepo{})

	first, err := svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 1, Weekday: 1, Status: "homeworking"})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 1, Weekday: 1, Status: "present"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusPresent, second.Status)

	patterns, err := svc.List(ctx, int64Ptr(1))
	require.NoError(t, err)
	require.Len(t, patterns, 1)
}

func int64Ptr(v int64) *int64 { return &v }

func TestPatternService_Upsert_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPatternService(newMemPatternRepo(), singlePersonRepo{})

	_, err := svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 1, Weekday: 7, Status: "present"})
	assert.Error(t, err)

	_, err = svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 1, Weekday: 1, Status: "vacation"})
	assert.Error(t, err)

	_, err = svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 2, Weekday: 1, Status: "present"})
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestPatternService_Clear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemPatternRepo()
	svc := NewPatternService(repo, singlePersonRepo{})

	_, err := svc.Upsert(ctx, recurrent.UpsertPatternRequest{PersonID: 1, Weekday: 5, Status: "homeworking"})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, 1, 5))
	patterns, err := svc.List(ctx, int64Ptr(1))
	require.NoError(t, err)
	assert.Empty(t, patterns)

	// Clearing an empty weekday is a no-op.
	require.NoError(t, svc.Clear(ctx, 1, 5))

	assert.Error(t, svc.Clear(ctx, 1, 9))
}
