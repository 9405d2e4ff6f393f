package analysis

import (
	"time"
)

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a Period. Start must not be after End.
func NewPeriod(start, end time.Time) (Period, error) {
	start, end = calendarDate(start), calendarDate(end)
	if start.After(end) {
		return Period{}, invalidArgument("period start %s is after end %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return Period{Start: start, End: end}, nil
}

// Contains reports whether date falls within the period, both ends included.
func (p Period) Contains(date time.Time) bool {
	date = calendarDate(date)
	return !date.Before(p.Start) && !date.After(p.End)
}
