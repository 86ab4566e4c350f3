package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

type AttendanceHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	EffectiveMonth(w http.ResponseWriter, r *http.Request)
	SetPeriod(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
	Bulk(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// monthYearQuery reads the month and year query parameters shared by the
// listing endpoints.
func monthYearQuery(r *http.Request) (time.Month, int, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || !validator.IsValidMonth(month) {
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, false
	}
	return time.Month(month), year, true
}

func optionalPersonIDQuery(r *http.Request) (*int64, bool) {
	raw := r.URL.Query().Get("person_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}

// ListRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.attendanceService.ListRecords(r.Context(), personID, month, year)
	if err != nil {
		slog.Error("Attendance list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.NewRecordResponse(rec))
	}
	response.Success(w, resp)
}

// EffectiveMonth implements AttendanceHandler. It returns the resolved
// month of one person, recurring patterns applied, sorted by date.
func (h *AttendanceHandlerImpl) EffectiveMonth(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}
	personID, ok := optionalPersonIDQuery(r)
	if !ok || personID == nil {
		response.BadRequest(w, "person_id query parameter is required", nil)
		return
	}

	days, err := h.attendanceService.ResolveMonth(r.Context(), *personID, month, year)
	if err != nil {
		slog.Error("Attendance effective service error", "error", err)
		response.HandleError(w, err)
		return
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	resp := make([]attendance.DayResponse, 0, len(dates))
	for _, date := range dates {
		parsed, _ := time.Parse("2006-01-02", date)
		resp = append(resp, attendance.NewDayResponse(parsed, days[date]))
	}
	response.Success(w, resp)
}

// SetPeriod implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetPeriod(w http.ResponseWriter, r *http.Request) {
	var setReq attendance.SetPeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		slog.Error("Attendance set decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := setReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := validator.IsValidDate(setReq.Date)
	day, err := h.attendanceService.SetPeriod(r.Context(), setReq.PersonID, date, attendance.Period(setReq.Period), setReq.StatusValue())
	if err != nil {
		slog.Error("Attendance set service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewDayResponse(date, day))
}

// Advance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Advance(w http.ResponseWriter, r *http.Request) {
	var advanceReq attendance.AdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&advanceReq); err != nil {
		slog.Error("Attendance advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := advanceReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := validator.IsValidDate(advanceReq.Date)
	cycle, _ := attendance.CycleByName(advanceReq.Cycle)

	day, err := h.attendanceService.Advance(r.Context(), advanceReq.PersonID, date, attendance.Period(advanceReq.Period), cycle)
	if err != nil {
		slog.Error("Attendance advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewDayResponse(date, day))
}

// Bulk implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Bulk(w http.ResponseWriter, r *http.Request) {
	var bulkReq attendance.BulkRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Attendance bulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var result attendance.BulkResult
	var err error
	if bulkReq.Mode == "weekday" {
		result, err = h.attendanceService.MarkWeekday(r.Context(), bulkReq.PersonID, time.Month(bulkReq.Month), bulkReq.Year, *bulkReq.Weekday, attendance.Status(bulkReq.Status))
	} else {
		result, err = h.attendanceService.MarkMonth(r.Context(), bulkReq.PersonID, time.Month(bulkReq.Month), bulkReq.Year, attendance.Status(bulkReq.Status))
	}
	if err != nil {
		slog.Error("Attendance bulk service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
