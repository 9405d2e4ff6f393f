package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsRate_NilTransactions(t *testing.T) {
	_, err := NewSavingsRateStrategy().Analyze(nil)

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSavingsRate_NilElement(t *testing.T) {
	txs := []*Transaction{income("1000", daysAgo(1)), nil}

	_, err := NewSavingsRateStrategy().Analyze(txs)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "index 1")
}

func TestSavingsRate_Empty(t *testing.T) {
	metric, err := NewSavingsRateStrategy().Analyze([]*Transaction{})

	require.NoError(t, err)
	assertMetric(t, "0", UnitPercent, metric)
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		txs      []*Transaction
		expected string
	}{
		{
			name:     "income and expense",
			txs:      []*Transaction{income("1000", daysAgo(3)), expense("400", daysAgo(2))},
			expected: "60.0000",
		},
		{
			name:     "no income",
			txs:      []*Transaction{expense("400", daysAgo(2)), expense("20", daysAgo(1))},
			expected: "0",
		},
		{
			name:     "half cent",
			txs:      []*Transaction{income("200", daysAgo(3)), expense("1", daysAgo(2))},
			expected: "99.5000",
		},
		{
			name:     "expenses exceed income",
			txs:      []*Transaction{income("500", daysAgo(3)), expense("1000", daysAgo(2))},
			expected: "-100.0000",
		},
		{
			name:     "no expenses",
			txs:      []*Transaction{income("500", daysAgo(3))},
			expected: "100.0000",
		},
		{
			name:     "repeating fraction is not re-rounded",
			txs:      []*Transaction{income("3", daysAgo(3)), expense("1", daysAgo(2))},
			expected: "66.6700",
		},
		{
			name:     "ignores dates",
			txs:      []*Transaction{income("1000", daysAgo(900)), expense("250", fixedNow.AddDate(1, 0, 0))},
			expected: "75.0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric, err := NewSavingsRateStrategy().Analyze(tt.txs)

			require.NoError(t, err)
			assertMetric(t, tt.expected, UnitPercent, metric)
		})
	}
}

func TestSavingsRate_Idempotent(t *testing.T) {
	txs := []*Transaction{income("3", daysAgo(3)), expense("1", daysAgo(2))}
	strategy := NewSavingsRateStrategy()

	first, err := strategy.Analyze(txs)
	require.NoError(t, err)
	second, err := strategy.Analyze(txs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
