package setting

import (
	"context"
	"errors"
)

// Setting keys
const (
	KeyCapacityLimit = "capacity_limit"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository is a named key-value store for process-wide tunables
// that must survive restarts, such as the daily capacity limit.
type SettingRepository interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error
}
