package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionName string          `db:"transaction_name"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Category        string
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          *uuid.UUID
	Category        *string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// ListForPeriod returns every transaction of the user dated within [start, end].
	ListForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Transaction, error)
}
