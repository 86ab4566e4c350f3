package person

import (
	"time"
)

// Person is an identity unit. Trigramme is the human-readable key shown
// everywhere in the UI; Capacity is fractional availability in [0, 1]
// (part-time ratio), independent of attendance status.
type Person struct {
	ID        int64
	Trigramme string
	Role      string
	Team      string
	Nature    string
	Capacity  float64
	StartDate time.Time
	CreatedAt time.Time
}
