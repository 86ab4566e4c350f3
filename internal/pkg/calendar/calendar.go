// Package calendar provides the working-day arithmetic used by the
// attendance engine: month enumeration, French bank holidays and the
// 14-day sprint numbering shown on the consolidated views.
package calendar

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month,
// 0 = Sunday through 6 = Saturday.
func FirstWeekday(month time.Month, year int) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// EasterSunday computes the date of (western) Easter Sunday for the given
// year using the Meeus/Jones/Butcher algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fixedHolidays are the French bank holidays that fall on the same
// month/day every year.
var fixedHolidays = []struct {
	month time.Month
	day   int
}{
	{time.January, 1},   // New Year's Day
	{time.May, 1},       // Labour Day
	{time.May, 8},       // Victory in Europe Day
	{time.July, 14},     // Bastille Day
	{time.August, 15},   // Assumption of Mary
	{time.November, 1},  // All Saints' Day
	{time.November, 11}, // Armistice Day
	{time.December, 25}, // Christmas Day
}

// IsBankHoliday reports whether date is a French bank holiday, either one
// of the eight fixed dates or one of the three Easter-relative holidays
// (Easter Monday, Ascension Day, Whit Monday).
func IsBankHoliday(date time.Time) bool {
	for _, h := range fixedHolidays {
		if date.Month() == h.month && date.Day() == h.day {
			return true
		}
	}

	easter := EasterSunday(date.Year())
	for _, offset := range []int{1, 39, 50} {
		h := easter.AddDate(0, 0, offset)
		if date.Month() == h.Month() && date.Day() == h.Day() {
			return true
		}
	}

	return false
}

// IsNonWorkingDay reports whether date is a weekend or a bank holiday.
// Non-working days never carry attendance records.
func IsNonWorkingDay(date time.Time) bool {
	return IsWeekend(date) || IsBankHoliday(date)
}

// WorkingDays returns the day-of-month numbers of all working days in the
// given month, in ascending order.
func WorkingDays(month time.Month, year int) []int {
	var days []int
	for day := 1; day <= DaysInMonth(month, year); day++ {
		if !IsNonWorkingDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
			days = append(days, day)
		}
	}
	return days
}

// WeekStart returns the Monday of the ISO week containing date, at
// midnight UTC. Used to bucket homeworking days per week.
func WeekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the preceding Monday-start week
	}
	d := date.AddDate(0, 0, -(weekday - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Midnight truncates date to midnight UTC.
func Midnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
