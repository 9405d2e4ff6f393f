package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
// Amount is signed: income positive, expense negative.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Category        analysis.Category
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		Category:        analysis.Category(row.Category),
		Amount:          row.Amount,
		TransactionName: row.TransactionName,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}

func analysisTransactionFromStorage(row *sqlconfig.Transaction) *analysis.Transaction {
	return &analysis.Transaction{
		Amount:   row.Amount,
		Date:     row.TransactionDate,
		Category: analysis.Category(row.Category),
	}
}
