package desk

import "errors"

var (
	ErrDeskTaken           = errors.New("desk is already reserved for this date")
	ErrReservationNotFound = errors.New("desk reservation not found")
	ErrUnknownDesk         = errors.New("desk does not exist")
)
