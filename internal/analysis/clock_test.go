package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{name: "same day", from: date(2025, 7, 15), to: date(2025, 7, 15), expected: 0},
		{name: "same month", from: date(2025, 7, 1), to: date(2025, 7, 31), expected: 0},
		{name: "partial month", from: date(2025, 1, 31), to: date(2025, 2, 28), expected: 0},
		{name: "one month", from: date(2025, 6, 15), to: date(2025, 7, 15), expected: 1},
		{name: "day not reached", from: date(2025, 6, 16), to: date(2025, 7, 15), expected: 0},
		{name: "across year", from: date(2024, 7, 15), to: date(2025, 7, 15), expected: 12},
		{name: "reversed", from: date(2025, 7, 15), to: date(2025, 5, 15), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthsBetween(tt.from, tt.to))
		})
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 7, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 30, daysBetween(from, to))
}

func TestClock_NilReadsWallClock(t *testing.T) {
	var clock Clock
	assert.Equal(t, calendarDate(time.Now()), clock.today())
}
