package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/report"
	"github.com/akachaad/office-pulse-2026/internal/domain/setting"
)

// PolicyWarningJob recomputes the current month's homeworking and
// capacity warnings and logs any findings, so overflow days surface in
// the logs even when nobody opens the report view.
func PolicyWarningJob(reportService report.ReportService, settingService setting.SettingService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		now := time.Now().UTC()

		limit, err := settingService.CapacityLimit(ctx)
		if err != nil {
			return err
		}

		warnings, err := reportService.MonthWarnings(ctx, now.Month(), now.Year(), limit)
		if err != nil {
			return err
		}

		for _, w := range warnings.Homeworking {
			slog.Warn("Homeworking weekly cap exceeded",
				"trigramme", w.Trigramme,
				"week_start", w.WeekStart,
				"days", w.HomeworkingDays,
			)
		}
		for _, w := range warnings.Capacity {
			slog.Warn("Office capacity exceeded",
				"date", w.Date,
				"present", w.PresentCount,
				"limit", w.CapacityLimit,
			)
		}

		return nil
	}
}
