package setting

import (
	"context"
	"testing"

	"github.com/akachaad/office-pulse-2026/internal/domain/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingRepo struct {
	values map[string]string
	gets   int
}

func (s *stubSettingRepo) Get(_ context.Context, key string) (string, error) {
	s.gets++
	value, ok := s.values[key]
	if !ok {
		return "", setting.ErrSettingNotFound
	}
	return value, nil
}

func (s *stubSettingRepo) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func TestSettingService_CapacityLimit_DefaultWhenUnset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewSettingService(&stubSettingRepo{values: map[string]string{}}, 50)

	limit, err := svc.CapacityLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, limit)
}

func TestSettingService_CapacityLimit_ReadsStoredValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSettingRepo{values: map[string]string{setting.KeyCapacityLimit: "35"}}
	svc := NewSettingService(repo, 50)

	limit, err := svc.CapacityLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 35, limit)

	// Second read serves from cache.
	_, err = svc.CapacityLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gets)
}

func TestSettingService_CapacityLimit_CorruptValueFallsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSettingRepo{values: map[string]string{setting.KeyCapacityLimit: "many"}}
	svc := NewSettingService(repo, 50)

	limit, err := svc.CapacityLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, limit)
}

func TestSettingService_SetCapacityLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubSettingRepo{values: map[string]string{}}
	svc := NewSettingService(repo, 50)

	require.NoError(t, svc.SetCapacityLimit(ctx, 30))
	assert.Equal(t, "30", repo.values[setting.KeyCapacityLimit])

	limit, err := svc.CapacityLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, limit)

	assert.Error(t, svc.SetCapacityLimit(ctx, -1))
}
