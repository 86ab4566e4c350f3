package desk

import (
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// ReserveRequest books a desk for one person on one date.
type ReserveRequest struct {
	DeskID    string `json:"desk_id"`
	PersonID  int64  `json:"person_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r ReserveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDeskID(r.DeskID) {
		errs = append(errs, validator.ValidationError{Field: "desk_id", Message: "must look like desk-1 .. desk-20"})
	}
	if r.PersonID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReservationResponse is the wire form of a reservation.
type ReservationResponse struct {
	ID        string `json:"id"`
	DeskID    string `json:"desk_id"`
	PersonID  int64  `json:"person_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewReservationResponse(r Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		DeskID:    r.DeskID,
		PersonID:  r.PersonID,
		Date:      r.Date.Format("2006-01-02"),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
