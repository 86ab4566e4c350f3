package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/desk"
	"github.com/akachaad/office-pulse-2026/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReservation(personID int64, deskID string, date time.Time) desk.Reservation {
	return desk.Reservation{
		DeskID:    deskID,
		PersonID:  personID,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func TestDeskRepository_CreateAndList(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewDeskRepository(testDB)
	p := createTestPerson(t, "DSK")
	date := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, testReservation(p.ID, "desk-3", date))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, testReservation(p.ID, "desk-1", date))
	require.NoError(t, err)

	reservations, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "desk-1", reservations[0].DeskID)
	assert.Equal(t, "desk-3", reservations[1].DeskID)
}

func TestDeskRepository_ConflictOnSameDeskAndDate(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewDeskRepository(testDB)
	alice := createTestPerson(t, "ALC")
	bob := createTestPerson(t, "BBT")
	date := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testReservation(alice.ID, "desk-5", date))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testReservation(bob.ID, "desk-5", date))
	assert.ErrorIs(t, err, desk.ErrDeskTaken)

	// Same desk on another date is fine.
	_, err = repo.Create(ctx, testReservation(bob.ID, "desk-5", date.AddDate(0, 0, 1)))
	require.NoError(t, err)
}

func TestDeskRepository_Delete(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewDeskRepository(testDB)
	p := createTestPerson(t, "DDL")
	date := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, testReservation(p.ID, "desk-7", date))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "desk-7", date))
	assert.ErrorIs(t, repo.Delete(ctx, "desk-7", date), desk.ErrReservationNotFound)
}
