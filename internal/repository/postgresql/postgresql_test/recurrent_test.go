package postgresql_test

import (
	"context"
	"testing"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternRepository_UpsertReplaces(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewPatternRepository(testDB)
	p := createTestPerson(t, "PAT")

	first, err := repo.Upsert(ctx, p.ID, 1, attendance.StatusHomeworking)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Weekday)

	second, err := repo.Upsert(ctx, p.ID, 1, attendance.StatusPresent)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusPresent, second.Status)

	patterns, err := repo.List(ctx, &p.ID)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
}

func TestPatternRepository_ListOrderedByWeekday(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewPatternRepository(testDB)
	p := createTestPerson(t, "ORD")

	_, err := repo.Upsert(ctx, p.ID, 5, attendance.StatusHomeworking)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, p.ID, 1, attendance.StatusPresent)
	require.NoError(t, err)

	patterns, err := repo.List(ctx, &p.ID)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, 1, patterns[0].Weekday)
	assert.Equal(t, 5, patterns[1].Weekday)
}

func TestPatternRepository_Delete(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewPatternRepository(testDB)
	p := createTestPerson(t, "PDL")

	created, err := repo.Upsert(ctx, p.ID, 3, attendance.StatusTraining)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), recurrent.ErrPatternNotFound)
}
