package http

import (
	"log/slog"
	"net/http"

	"github.com/akachaad/office-pulse-2026/internal/domain/report"
	"github.com/akachaad/office-pulse-2026/internal/domain/setting"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
)

type ReportHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Warnings(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService  report.ReportService
	settingService setting.SettingService
}

func NewReportHandler(reportService report.ReportService, settingService setting.SettingService) ReportHandler {
	return &ReportHandlerImpl{
		reportService:  reportService,
		settingService: settingService,
	}
}

// Stats implements ReportHandler. With person_id it returns one person's
// month, with team one team's aggregate, with neither every person.
func (h *ReportHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}
	personID, ok := optionalPersonIDQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid person_id", nil)
		return
	}

	if personID != nil {
		stats, err := h.reportService.PersonStats(r.Context(), *personID, month, year)
		if err != nil {
			slog.Error("Report person stats service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, stats)
		return
	}

	if team := r.URL.Query().Get("team"); team != "" {
		stats, err := h.reportService.TeamStats(r.Context(), team, month, year)
		if err != nil {
			slog.Error("Report team stats service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, stats)
		return
	}

	stats, err := h.reportService.AllStats(r.Context(), month, year)
	if err != nil {
		slog.Error("Report all stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Warnings implements ReportHandler.
func (h *ReportHandlerImpl) Warnings(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	limit, err := h.settingService.CapacityLimit(r.Context())
	if err != nil {
		slog.Error("Report warnings capacity limit error", "error", err)
		response.HandleError(w, err)
		return
	}

	warnings, err := h.reportService.MonthWarnings(r.Context(), month, year, limit)
	if err != nil {
		slog.Error("Report warnings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, warnings)
}
