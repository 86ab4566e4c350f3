package recurrent

import (
	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// UpsertPatternRequest sets the default status for one weekday of one
// person.
type UpsertPatternRequest struct {
	PersonID int64  `json:"person_id"`
	Weekday  int    `json:"weekday"`
	Status   string `json:"status"`
}

func (r UpsertPatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "is required"})
	}
	if !validator.IsValidWeekday(r.Weekday) {
		errs = append(errs, validator.ValidationError{Field: "weekday", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}
	if !attendance.Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PatternResponse is the wire form of a pattern.
type PatternResponse struct {
	ID       string `json:"id"`
	PersonID int64  `json:"person_id"`
	Weekday  int    `json:"weekday"`
	Status   string `json:"status"`
}

func NewPatternResponse(p Pattern) PatternResponse {
	return PatternResponse{
		ID:       p.ID,
		PersonID: p.PersonID,
		Weekday:  p.Weekday,
		Status:   string(p.Status),
	}
}
