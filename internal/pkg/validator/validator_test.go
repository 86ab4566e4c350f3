package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("abc"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-10-06")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC), d)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("06/10/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTrigramme(t *testing.T) {
	assert.True(t, IsValidTrigramme("ABC"))
	assert.True(t, IsValidTrigramme("ab"))
	assert.True(t, IsValidTrigramme("X"))
	assert.False(t, IsValidTrigramme(""))
	assert.False(t, IsValidTrigramme("ABCD"))
	assert.False(t, IsValidTrigramme("A1"))
	assert.False(t, IsValidTrigramme("A B"))
}

func TestIsValidDeskID(t *testing.T) {
	assert.True(t, IsValidDeskID("desk-1"))
	assert.True(t, IsValidDeskID("desk-20"))
	assert.False(t, IsValidDeskID("desk-"))
	assert.False(t, IsValidDeskID("table-1"))
	assert.False(t, IsValidDeskID("desk-100"))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("09:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.True(t, IsValidTimeOfDay("00:00"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:00"))
	assert.False(t, IsValidTimeOfDay("09:60"))
}

func TestIsValidCapacity(t *testing.T) {
	assert.True(t, IsValidCapacity(0))
	assert.True(t, IsValidCapacity(0.5))
	assert.True(t, IsValidCapacity(1))
	assert.False(t, IsValidCapacity(-0.1))
	assert.False(t, IsValidCapacity(1.1))
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday(0))
	assert.True(t, IsValidWeekday(6))
	assert.False(t, IsValidWeekday(-1))
	assert.False(t, IsValidWeekday(7))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "trigramme", Message: "is required"},
		{Field: "capacity", Message: "must be between 0 and 1"},
	}

	assert.Equal(t, "trigramme: is required; capacity: must be between 0 and 1", errs.Error())
	assert.Equal(t, map[string]string{
		"trigramme": "is required",
		"capacity":  "must be between 0 and 1",
	}, errs.ToMap())
}
