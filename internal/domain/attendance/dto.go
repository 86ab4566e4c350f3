package attendance

import (
	"time"

	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

// SetPeriodRequest is the body of a single-period write. A nil Status
// clears the record at (person, date, period).
type SetPeriodRequest struct {
	PersonID int64   `json:"person_id"`
	Date     string  `json:"date"`
	Period   string  `json:"period"`
	Status   *string `json:"status"`
}

func (r SetPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if !Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be morning, afternoon or full_day"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusValue maps the nullable wire status onto the domain Status.
func (r SetPeriodRequest) StatusValue() Status {
	if r.Status == nil {
		return StatusNone
	}
	return Status(*r.Status)
}

// AdvanceRequest cycles the status at (person, date, period) one step
// through the named cycle.
type AdvanceRequest struct {
	PersonID int64  `json:"person_id"`
	Date     string `json:"date"`
	Period   string `json:"period"`
	Cycle    string `json:"cycle"`
}

func (r AdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if !Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be morning, afternoon or full_day"})
	}
	if _, ok := CycleByName(r.Cycle); !ok {
		errs = append(errs, validator.ValidationError{Field: "cycle", Message: "must be full or leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkRequest applies one status to many dates of a month: every working
// day ("month" mode) or every occurrence of one weekday ("weekday" mode).
type BulkRequest struct {
	PersonID int64  `json:"person_id"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Status   string `json:"status"`
	Mode     string `json:"mode"`
	Weekday  *int   `json:"weekday"`
}

func (r BulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized status"})
	}
	switch r.Mode {
	case "month":
	case "weekday":
		if r.Weekday == nil || !validator.IsValidWeekday(*r.Weekday) {
			errs = append(errs, validator.ValidationError{Field: "weekday", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be month or weekday"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayResponse is the resolved state of one date.
type DayResponse struct {
	Date      string  `json:"date"`
	Morning   *string `json:"morning"`
	Afternoon *string `json:"afternoon"`
	FullDay   *string `json:"full_day"`
	Recurrent bool    `json:"recurrent"`
}

// NewDayResponse converts an EffectiveDay for the wire, rendering unset
// slots as null.
func NewDayResponse(date time.Time, day EffectiveDay) DayResponse {
	return DayResponse{
		Date:      date.Format("2006-01-02"),
		Morning:   statusPtr(day.Morning),
		Afternoon: statusPtr(day.Afternoon),
		FullDay:   statusPtr(day.FullDay),
		Recurrent: day.Recurrent,
	}
}

func statusPtr(s Status) *string {
	if s == StatusNone {
		return nil
	}
	v := string(s)
	return &v
}

// RecordResponse is one raw stored record.
type RecordResponse struct {
	ID       string `json:"id"`
	PersonID int64  `json:"person_id"`
	Date     string `json:"date"`
	Period   string `json:"period"`
	Status   string `json:"status"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:       r.ID,
		PersonID: r.PersonID,
		Date:     r.Date.Format("2006-01-02"),
		Period:   string(r.Period),
		Status:   string(r.Status),
	}
}

// BulkFailure reports one date a bulk operation could not apply.
type BulkFailure struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

// BulkResult lists the dates a bulk operation wrote and those it skipped
// with an error. Bulk application is best effort; one failed date never
// aborts the rest.
type BulkResult struct {
	Applied  []string      `json:"applied"`
	Failures []BulkFailure `json:"failures"`
}
