package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Trigramme validation: 1-3 letters, case handled by the caller.
var trigrammeRegex = regexp.MustCompile(`^[A-Za-z]{1,3}$`)

func IsValidTrigramme(trigramme string) bool {
	return trigrammeRegex.MatchString(trigramme)
}

// Desk id validation: "desk-<n>" as produced by the floor plan.
var deskIDRegex = regexp.MustCompile(`^desk-[0-9]{1,2}$`)

func IsValidDeskID(deskID string) bool {
	return deskIDRegex.MatchString(deskID)
}

// Time-of-day validation: "HH:MM", 24h clock.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func IsValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// Capacity validation: fractional availability in [0, 1].
func IsValidCapacity(capacity float64) bool {
	return capacity >= 0 && capacity <= 1
}

// Weekday validation: 0 = Sunday .. 6 = Saturday.
func IsValidWeekday(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}

// Month validation: 1 = January .. 12 = December.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
