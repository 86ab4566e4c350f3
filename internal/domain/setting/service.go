package setting

import "context"

// SettingService exposes the stored process-wide tunables.
type SettingService interface {
	// CapacityLimit returns the daily office capacity limit.
	CapacityLimit(ctx context.Context) (int, error)

	// SetCapacityLimit stores a new daily office capacity limit.
	SetCapacityLimit(ctx context.Context, limit int) error
}
