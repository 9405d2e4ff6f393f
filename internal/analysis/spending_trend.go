package analysis

import (
	"github.com/shopspring/decimal"
)

const (
	recentWindowDays   = 30
	previousWindowDays = 60
)

// SpendingTrendStrategy compares spending of the last 30 days with the 30 days
// before, in percent. A positive trend means spending grew.
type SpendingTrendStrategy struct {
	clock Clock
}

var _ CategoryStrategy = (*SpendingTrendStrategy)(nil)

// NewSpendingTrendStrategy creates a SpendingTrendStrategy.
// A nil clock reads the wall clock.
func NewSpendingTrendStrategy(clock Clock) *SpendingTrendStrategy {
	return &SpendingTrendStrategy{clock: clock}
}

func (s *SpendingTrendStrategy) Supports() KpiType {
	return KpiSpendingTrend
}

// Analyze computes the trend over all categories.
func (s *SpendingTrendStrategy) Analyze(transactions []*Transaction) (Metric, error) {
	if err := validateTransactions(transactions); err != nil {
		return Metric{}, err
	}
	previous, recent := s.windowTotals(transactions, CategoryNone)
	return NewMetric(trend(previous, recent), UnitPercent), nil
}

// AnalyzeCategory computes the trend over the expenses of one category.
func (s *SpendingTrendStrategy) AnalyzeCategory(transactions []*Transaction, category Category) (Metric, error) {
	if category == CategoryNone {
		return Metric{}, invalidArgument("category must not be empty")
	}
	if err := validateTransactions(transactions); err != nil {
		return Metric{}, err
	}
	previous, recent := s.windowTotals(transactions, category)
	return NewMetric(trend(previous, recent), UnitPercent), nil
}

// WindowTotals returns the signed expense totals of the previous window
// [today-60, today-31] and the recent window [today-30, today].
func (s *SpendingTrendStrategy) WindowTotals(transactions []*Transaction) (previous, recent decimal.Decimal, err error) {
	if err := validateTransactions(transactions); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	previous, recent = s.windowTotals(transactions, CategoryNone)
	return previous, recent, nil
}

func (s *SpendingTrendStrategy) windowTotals(transactions []*Transaction, category Category) (previous, recent decimal.Decimal) {
	today := s.clock.today()
	previous = decimal.Zero
	recent = decimal.Zero

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		if category != CategoryNone && tx.Category != category {
			continue
		}

		daysAgo := daysBetween(tx.Date, today)
		switch {
		case daysAgo < 0:
			// future-dated
		case daysAgo <= recentWindowDays:
			recent = recent.Add(tx.Amount)
		case daysAgo <= previousWindowDays:
			previous = previous.Add(tx.Amount)
		}
	}
	return previous, recent
}

// trend expects previous and recent as signed (non-positive) expense totals.
func trend(previous, recent decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	change := recent.Sub(previous)
	return percentOf(change, previous)
}
