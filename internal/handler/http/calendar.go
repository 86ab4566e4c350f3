package http

import (
	"net/http"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
	"github.com/akachaad/office-pulse-2026/internal/pkg/calendar"
)

type CalendarHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	sprintEpoch time.Time
}

func NewCalendarHandler(sprintEpoch time.Time) CalendarHandler {
	return &CalendarHandlerImpl{sprintEpoch: sprintEpoch}
}

type calendarDay struct {
	Date        string `json:"date"`
	Weekday     int    `json:"weekday"`
	Working     bool   `json:"working"`
	BankHoliday bool   `json:"bank_holiday"`
	Sprint      int    `json:"sprint"`
	SprintStart bool   `json:"sprint_start"`
	SprintEnd   bool   `json:"sprint_end"`
}

// Month implements CalendarHandler. It returns the day grid the calendar
// views render: working flags, bank holidays and sprint boundaries.
func (h *CalendarHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	days := make([]calendarDay, 0, calendar.DaysInMonth(month, year))
	for dayNum := 1; dayNum <= calendar.DaysInMonth(month, year); dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		sprint := calendar.Sprint(date, h.sprintEpoch)

		days = append(days, calendarDay{
			Date:        date.Format("2006-01-02"),
			Weekday:     int(date.Weekday()),
			Working:     !calendar.IsNonWorkingDay(date),
			BankHoliday: calendar.IsBankHoliday(date),
			Sprint:      sprint.Number,
			SprintStart: sprint.IsStart,
			SprintEnd:   sprint.IsEnd,
		})
	}

	response.Success(w, days)
}
