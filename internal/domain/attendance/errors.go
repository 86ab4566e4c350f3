package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrNonWorkingDay    = errors.New("attendance cannot be edited on a weekend or bank holiday")
	ErrInvalidPeriod    = errors.New("period must be morning, afternoon or full_day")
	ErrInvalidStatus    = errors.New("status is not a recognized attendance status")
	ErrInvalidCycle     = errors.New("unknown status cycle")
	ErrInvalidDate      = errors.New("date is outside the supported range")
	ErrConflictRecovery = errors.New("full-day and half-day records conflict and could not be reconciled")
)
