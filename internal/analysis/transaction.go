package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the read-only view the strategies consume.
// Income has a positive Amount, an expense a negative one.
type Transaction struct {
	Amount   decimal.Decimal
	Date     time.Time
	Category Category
}

// IsIncome reports whether the transaction is income.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

func validateTransactions(transactions []*Transaction) error {
	if transactions == nil {
		return invalidArgument("transactions must not be nil")
	}
	for i, tx := range transactions {
		if tx == nil {
			return invalidArgument("transaction at index %d is nil", i)
		}
	}
	return nil
}
