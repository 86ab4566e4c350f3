package setting

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/akachaad/office-pulse-2026/internal/domain/setting"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// SettingServiceImpl caches the capacity limit in memory so every report
// request does not hit storage; writes go through to the settings table
// and refresh the cache.
type SettingServiceImpl struct {
	settingRepo  setting.SettingRepository
	defaultLimit int

	mu     sync.RWMutex
	limit  int
	loaded bool
}

func NewSettingService(settingRepo setting.SettingRepository, defaultLimit int) *SettingServiceImpl {
	return &SettingServiceImpl{
		settingRepo:  settingRepo,
		defaultLimit: defaultLimit,
	}
}

// CapacityLimit returns the daily capacity limit, falling back to the
// configured default when none has been stored yet.
func (s *SettingServiceImpl) CapacityLimit(ctx context.Context) (int, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.limit, nil
	}
	s.mu.RUnlock()

	value, err := s.settingRepo.Get(ctx, setting.KeyCapacityLimit)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			s.cache(s.defaultLimit)
			return s.defaultLimit, nil
		}
		return 0, err
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		// A corrupt stored value must not break reporting.
		limit = s.defaultLimit
	}
	s.cache(limit)
	return limit, nil
}

// SetCapacityLimit stores a new daily capacity limit.
func (s *SettingServiceImpl) SetCapacityLimit(ctx context.Context, limit int) error {
	if limit < 0 {
		return validator.ValidationErrors{
			{Field: "capacity_limit", Message: "must not be negative"},
		}
	}

	if err := s.settingRepo.Set(ctx, setting.KeyCapacityLimit, strconv.Itoa(limit)); err != nil {
		return err
	}
	s.cache(limit)
	return nil
}

func (s *SettingServiceImpl) cache(limit int) {
	s.mu.Lock()
	s.limit = limit
	s.loaded = true
	s.mu.Unlock()
}
