package response

import (
	"errors"
	"net/http"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/auth"
	"github.com/akachaad/office-pulse-2026/internal/domain/desk"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrTrigrammeExists):
		Conflict(w, "Trigramme already registered")
	case errors.Is(err, person.ErrInvalidCapacity):
		UnprocessableEntity(w, "Capacity must be between 0 and 1")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNonWorkingDay):
		UnprocessableEntity(w, "Date is a weekend or bank holiday")
	case errors.Is(err, attendance.ErrInvalidPeriod):
		UnprocessableEntity(w, "Period must be morning, afternoon or full_day")
	case errors.Is(err, attendance.ErrInvalidStatus):
		UnprocessableEntity(w, "Status is not recognized")
	case errors.Is(err, attendance.ErrInvalidCycle):
		UnprocessableEntity(w, "Cycle must be full or leave")
	case errors.Is(err, attendance.ErrInvalidDate):
		UnprocessableEntity(w, "Date is out of range")
	case errors.Is(err, attendance.ErrConflictRecovery):
		Conflict(w, "Attendance write conflicted, please retry")

	// Recurrent domain errors
	case errors.Is(err, recurrent.ErrPatternNotFound):
		NotFound(w, "Recurrent pattern not found")

	// Desk domain errors
	case errors.Is(err, desk.ErrDeskTaken):
		Conflict(w, "Desk is already reserved for this date")
	case errors.Is(err, desk.ErrReservationNotFound):
		NotFound(w, "Reservation not found")
	case errors.Is(err, desk.ErrUnknownDesk):
		UnprocessableEntity(w, "Unknown desk")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
