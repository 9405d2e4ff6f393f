package analysis

import (
	"github.com/shopspring/decimal"
)

// SavingsRateStrategy computes the share of income that was not spent, in percent.
type SavingsRateStrategy struct{}

var _ Strategy = SavingsRateStrategy{}

// NewSavingsRateStrategy creates a SavingsRateStrategy.
func NewSavingsRateStrategy() SavingsRateStrategy {
	return SavingsRateStrategy{}
}

func (SavingsRateStrategy) Supports() KpiType {
	return KpiSavingsRate
}

// Analyze returns (income + expenses) / income * 100 over the whole input.
// Without income the rate is 0.
func (SavingsRateStrategy) Analyze(transactions []*Transaction) (Metric, error) {
	if err := validateTransactions(transactions); err != nil {
		return Metric{}, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			totalIncome = totalIncome.Add(tx.Amount)
		case tx.IsExpense():
			totalExpenses = totalExpenses.Add(tx.Amount)
		}
	}

	if totalIncome.IsZero() {
		return ZeroMetric(UnitPercent), nil
	}

	savings := totalIncome.Add(totalExpenses)
	return NewMetric(percentOf(savings, totalIncome), UnitPercent), nil
}
