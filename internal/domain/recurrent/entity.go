package recurrent

import (
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
)

// Pattern is a default full-day status for one weekday of one person,
// applied only when no explicit record exists for a date. Weekday uses
// 0 = Sunday through 6 = Saturday.
type Pattern struct {
	ID        string
	PersonID  int64
	Weekday   int
	Status    attendance.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
