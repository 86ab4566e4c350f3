package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.January, 2025))
	assert.Equal(t, 28, DaysInMonth(time.February, 2025))
	assert.Equal(t, 29, DaysInMonth(time.February, 2024)) // leap year
	assert.Equal(t, 30, DaysInMonth(time.November, 2025))
	assert.Equal(t, 31, DaysInMonth(time.December, 2026))
}

func TestFirstWeekday(t *testing.T) {
	// October 1st 2025 is a Wednesday
	assert.Equal(t, 3, FirstWeekday(time.October, 2025))
	// February 1st 2026 is a Sunday
	assert.Equal(t, 0, FirstWeekday(time.February, 2026))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2025, time.October, 4)))  // Saturday
	assert.True(t, IsWeekend(date(2025, time.October, 5)))  // Sunday
	assert.False(t, IsWeekend(date(2025, time.October, 6))) // Monday
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2027, date(2027, time.March, 28)},
		{2030, date(2030, time.April, 21)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EasterSunday(tt.year), "easter %d", tt.year)
	}
}

func TestIsBankHoliday_Fixed(t *testing.T) {
	fixed := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.May, 1),
		date(2025, time.May, 8),
		date(2025, time.July, 14),
		date(2025, time.August, 15),
		date(2025, time.November, 1),
		date(2025, time.November, 11),
		date(2025, time.December, 25),
	}
	for _, d := range fixed {
		assert.True(t, IsBankHoliday(d), "%s should be a holiday", d.Format("2006-01-02"))
	}

	assert.False(t, IsBankHoliday(date(2025, time.December, 24)))
	assert.False(t, IsBankHoliday(date(2025, time.July, 15)))
}

func TestIsBankHoliday_EasterRelative(t *testing.T) {
	// Easter Sunday 2025 is April 20th.
	assert.True(t, IsBankHoliday(date(2025, time.April, 21)))  // Easter Monday
	assert.True(t, IsBankHoliday(date(2025, time.May, 29)))    // Ascension
	assert.True(t, IsBankHoliday(date(2025, time.June, 9)))    // Whit Monday
	assert.False(t, IsBankHoliday(date(2025, time.April, 20))) // Easter Sunday itself falls on a Sunday anyway

	// And 2026, Easter Sunday April 5th.
	assert.True(t, IsBankHoliday(date(2026, time.April, 6)))
	assert.True(t, IsBankHoliday(date(2026, time.May, 14)))
	assert.True(t, IsBankHoliday(date(2026, time.May, 25)))
}

func TestWorkingDays(t *testing.T) {
	// November 2025: 30 days, 5 weekends (10 days), Nov 1 (Sat) and
	// Nov 11 (Tue) are holidays -> 19 working days.
	days := WorkingDays(time.November, 2025)
	assert.Len(t, days, 19)
	assert.NotContains(t, days, 1)
	assert.NotContains(t, days, 11)
	assert.Contains(t, days, 12)

	// December 2025: Christmas on a Thursday.
	days = WorkingDays(time.December, 2025)
	assert.NotContains(t, days, 25)
	assert.Contains(t, days, 24)
}

func TestWeekStart(t *testing.T) {
	monday := date(2025, time.October, 6)
	assert.Equal(t, monday, WeekStart(monday))
	assert.Equal(t, monday, WeekStart(date(2025, time.October, 8)))
	assert.Equal(t, monday, WeekStart(date(2025, time.October, 12))) // Sunday
	assert.Equal(t, date(2025, time.October, 13), WeekStart(date(2025, time.October, 13)))
}

func TestSprint(t *testing.T) {
	epoch := date(2025, time.October, 6)

	before := Sprint(date(2025, time.October, 5), epoch)
	assert.Equal(t, 0, before.Number)
	assert.False(t, before.IsStart)

	first := Sprint(epoch, epoch)
	assert.Equal(t, 1, first.Number)
	assert.True(t, first.IsStart)
	assert.False(t, first.IsEnd)

	end := Sprint(date(2025, time.October, 19), epoch)
	assert.Equal(t, 1, end.Number)
	assert.True(t, end.IsEnd)

	second := Sprint(date(2025, time.October, 20), epoch)
	assert.Equal(t, 2, second.Number)
	assert.True(t, second.IsStart)

	mid := Sprint(date(2025, time.October, 29), epoch)
	assert.Equal(t, 2, mid.Number)
	assert.False(t, mid.IsStart)
	assert.False(t, mid.IsEnd)
}
