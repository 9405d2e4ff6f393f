package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record: a spending limit for one category over a period.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	PeriodStart time.Time       `db:"period_start"`
	PeriodEnd   time.Time       `db:"period_end"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID      uuid.UUID
	Name        string
	Category    string
	LimitAmount decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// BudgetFilter specifies filters for listing budgets.
type BudgetFilter struct {
	UserID *uuid.UUID
	// ActiveOn keeps only budgets whose period contains this date.
	ActiveOn *time.Time
	Limit    int
	Offset   int
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}
