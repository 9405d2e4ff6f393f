package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

var (
	hundred    = decimal.NewFromInt(100)
	usageScale = int32(2)
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, processor ActionProcessor) *BudgetService {
	return &BudgetService{storage: store, processor: processor}
}

// CreateBudget creates a new budget through the operator and returns its ID.
func (s *BudgetService) CreateBudget(ctx context.Context, budget Budget) (uuid.UUID, error) {
	action := &actions.CreateBudget{
		UserID:      budget.UserID,
		Name:        budget.Name,
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount,
		Period:      budget.Period,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListBudgets returns every budget of the user with its usage.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]BudgetUsage, error) {
	return s.usages(ctx, &sqlconfig.BudgetFilter{UserID: &userID})
}

// ActiveBudgets returns the user's budgets whose period contains day, with their usage.
func (s *BudgetService) ActiveBudgets(ctx context.Context, userID uuid.UUID, day time.Time) ([]BudgetUsage, error) {
	return s.usages(ctx, &sqlconfig.BudgetFilter{UserID: &userID, ActiveOn: &day})
}

func (s *BudgetService) usages(ctx context.Context, filter *sqlconfig.BudgetFilter) ([]BudgetUsage, error) {
	rows, err := s.storage.Budgets.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	usages := make([]BudgetUsage, 0, len(rows))
	for _, row := range rows {
		budget := budgetFromStorage(row)
		spent, err := s.spent(ctx, budget)
		if err != nil {
			return nil, err
		}
		usages = append(usages, newBudgetUsage(budget, spent))
	}
	return usages, nil
}

// spent sums the absolute expenses of the budget's category within its period.
func (s *BudgetService) spent(ctx context.Context, budget Budget) (decimal.Decimal, error) {
	rows, err := s.storage.Transactions.ListForPeriod(ctx, budget.UserID, budget.Period.Start, budget.Period.End)
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, row := range rows {
		if row.Category != string(budget.Category) || !row.Amount.IsNegative() {
			continue
		}
		spent = spent.Add(row.Amount.Neg())
	}
	return spent, nil
}

func newBudgetUsage(budget Budget, spent decimal.Decimal) BudgetUsage {
	remaining := budget.LimitAmount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return BudgetUsage{
		Budget:          budget,
		Spent:           spent,
		Remaining:       remaining,
		UsagePercentage: UsagePercentage(spent, budget.LimitAmount),
	}
}

// UsagePercentage returns spent / limit * 100 rounded half-to-even at 2
// decimals and capped at 100. A non-positive limit yields 0.
func UsagePercentage(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	usage := spent.Mul(hundred).Div(limit).RoundBank(usageScale)
	if usage.GreaterThan(hundred) {
		return hundred.RoundBank(usageScale)
	}
	return usage
}
