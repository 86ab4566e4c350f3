package desk

import "time"

// DeskCount is the number of desks on the floor plan, laid out as four
// islands of five.
const DeskCount = 20

// Reservation books one desk for one person on one date. A desk holds at
// most one reservation per date; overlapping time ranges within the day
// are not validated.
type Reservation struct {
	ID        string
	DeskID    string
	PersonID  int64
	Date      time.Time
	StartTime string
	EndTime   string
	CreatedAt time.Time
}
