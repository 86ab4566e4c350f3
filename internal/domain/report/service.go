package report

import (
	"context"
	"time"
)

// ReportService computes monthly aggregations and policy warnings from
// resolved attendance.
type ReportService interface {
	// PersonStats aggregates one person's month.
	PersonStats(ctx context.Context, personID int64, month time.Month, year int) (Stats, error)

	// AllStats aggregates every person's month, ordered by trigramme.
	AllStats(ctx context.Context, month time.Month, year int) ([]Stats, error)

	// TeamStats aggregates one team's month across its members.
	TeamStats(ctx context.Context, team string, month time.Month, year int) (TeamStats, error)

	// MonthWarnings computes the homeworking weekly cap and daily
	// capacity overflow warnings for a month against the given limit.
	MonthWarnings(ctx context.Context, month time.Month, year int, capacityLimit int) (Warnings, error)
}
