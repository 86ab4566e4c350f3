package person

import (
	"strings"

	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// CreatePersonRequest is the add-person form. Trigramme and start date
// are required; capacity defaults to 1 (full time).
type CreatePersonRequest struct {
	Trigramme string   `json:"trigramme"`
	Role      string   `json:"role"`
	Team      string   `json:"team"`
	Nature    string   `json:"nature"`
	Capacity  *float64 `json:"capacity"`
	StartDate string   `json:"start_date"`
}

func (r CreatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Trigramme) {
		errs = append(errs, validator.ValidationError{Field: "trigramme", Message: "is required"})
	} else if !validator.IsValidTrigramme(strings.TrimSpace(r.Trigramme)) {
		errs = append(errs, validator.ValidationError{Field: "trigramme", Message: "must be 1 to 3 letters"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a YYYY-MM-DD date"})
	}
	if r.Capacity != nil && !validator.IsValidCapacity(*r.Capacity) {
		errs = append(errs, validator.ValidationError{Field: "capacity", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPerson builds the entity, normalizing the trigramme to upper case.
func (r CreatePersonRequest) ToPerson() Person {
	capacity := 1.0
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	startDate, _ := validator.IsValidDate(r.StartDate)

	return Person{
		Trigramme: strings.ToUpper(strings.TrimSpace(r.Trigramme)),
		Role:      strings.TrimSpace(r.Role),
		Team:      strings.TrimSpace(r.Team),
		Nature:    strings.TrimSpace(r.Nature),
		Capacity:  capacity,
		StartDate: startDate,
	}
}

// UpdateCapacityRequest adjusts one person's availability fraction.
type UpdateCapacityRequest struct {
	Capacity float64 `json:"capacity"`
}

func (r UpdateCapacityRequest) Validate() error {
	if !validator.IsValidCapacity(r.Capacity) {
		return validator.ValidationErrors{
			{Field: "capacity", Message: "must be between 0 and 1"},
		}
	}
	return nil
}

// PersonResponse is the wire form of a person.
type PersonResponse struct {
	ID        int64   `json:"id"`
	Trigramme string  `json:"trigramme"`
	Role      string  `json:"role"`
	Team      string  `json:"team"`
	Nature    string  `json:"nature"`
	Capacity  float64 `json:"capacity"`
	StartDate string  `json:"start_date"`
}

func NewPersonResponse(p Person) PersonResponse {
	startDate := ""
	if !p.StartDate.IsZero() {
		startDate = p.StartDate.Format("2006-01-02")
	}
	return PersonResponse{
		ID:        p.ID,
		Trigramme: p.Trigramme,
		Role:      p.Role,
		Team:      p.Team,
		Nature:    p.Nature,
		Capacity:  p.Capacity,
		StartDate: startDate,
	}
}
