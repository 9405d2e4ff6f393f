package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAverageExpenseStrategy computes the average monthly spend since the
// oldest expense, as a negative currency amount.
type MonthlyAverageExpenseStrategy struct {
	clock Clock
}

var _ Strategy = (*MonthlyAverageExpenseStrategy)(nil)

// NewMonthlyAverageExpenseStrategy creates a MonthlyAverageExpenseStrategy.
// A nil clock reads the wall clock.
func NewMonthlyAverageExpenseStrategy(clock Clock) *MonthlyAverageExpenseStrategy {
	return &MonthlyAverageExpenseStrategy{clock: clock}
}

func (s *MonthlyAverageExpenseStrategy) Supports() KpiType {
	return KpiMonthlyAverageExpenses
}

// Analyze divides the expense total by the whole months between the oldest
// expense and today, at least one, rounding half-to-even at 2 decimals.
func (s *MonthlyAverageExpenseStrategy) Analyze(transactions []*Transaction) (Metric, error) {
	if err := validateTransactions(transactions); err != nil {
		return Metric{}, err
	}

	total := decimal.Zero
	var oldest time.Time
	found := false
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		total = total.Add(tx.Amount)
		date := calendarDate(tx.Date)
		if !found || date.Before(oldest) {
			oldest = date
			found = true
		}
	}

	if !found {
		return ZeroMetric(UnitCurrency), nil
	}

	months := monthsBetween(oldest, s.clock.today())
	if months < 1 {
		months = 1
	}

	average := divHalfEven(total, decimal.NewFromInt(int64(months)), 2)
	return NewMetric(average, UnitCurrency), nil
}
