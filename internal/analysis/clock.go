package analysis

import (
	"time"
)

// Clock supplies the reference instant the strategies anchor "today" on.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

func (c Clock) today() time.Time {
	if c == nil {
		return calendarDate(time.Now())
	}
	return calendarDate(c())
}

// calendarDate drops the time of day, keeping t's own year, month and day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(calendarDate(b).Sub(calendarDate(a)).Hours() / 24)
}

// monthsBetween returns the number of whole calendar months from a to b.
// A partial month does not count: Jan 31 to Feb 28 is zero months.
func monthsBetween(a, b time.Time) int {
	a, b = calendarDate(a), calendarDate(b)
	if b.Before(a) {
		return -monthsBetween(b, a)
	}

	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
