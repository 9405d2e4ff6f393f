package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, 7, 15, 12, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

func expense(amount string, date time.Time) *Transaction {
	return &Transaction{Amount: decimal.RequireFromString("-" + amount), Date: date}
}

func income(amount string, date time.Time) *Transaction {
	return &Transaction{Amount: decimal.RequireFromString(amount), Date: date}
}

func categorized(tx *Transaction, category Category) *Transaction {
	tx.Category = category
	return tx
}

// assertMetric checks the value including its scale, e.g. "66.6700" and not "66.67".
func assertMetric(t *testing.T, expected string, unit Unit, metric Metric) {
	t.Helper()
	assert.Equal(t, expected, metric.Value.StringFixed(metric.Scale()))
	assert.Equal(t, unit, metric.Unit)
}
