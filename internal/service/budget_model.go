package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Budget is a spending limit for one category over a period.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Category    analysis.Category
	LimitAmount decimal.Decimal
	Period      analysis.Period
	CreatedAt   time.Time
}

// BudgetUsage is a budget with the spending recorded against it.
type BudgetUsage struct {
	Budget Budget
	// Spent is the absolute amount spent in the budget's category and period.
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	// UsagePercentage is Spent relative to the limit, capped at 100.
	UsagePercentage decimal.Decimal
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Category:    analysis.Category(row.Category),
		LimitAmount: row.LimitAmount,
		Period:      analysis.Period{Start: row.PeriodStart, End: row.PeriodEnd},
		CreatedAt:   row.CreatedAt,
	}
}
