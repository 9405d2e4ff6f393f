package service

import (
	"context"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
)

// ActionProcessor runs a write action inside a storage transaction.
// *operator.OperatorDelegator implements it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Analysis    *AnalysisService
	Dashboard   *DashboardService
}

// NewService creates a new Service with the given storage and write processor.
func NewService(store *storage.Storage, processor ActionProcessor, clock analysis.Clock) *Service {
	registry := analysis.DefaultRegistry(clock)
	transactions := NewTransactionService(store, processor)
	budgets := NewBudgetService(store, processor)

	return &Service{
		Transaction: transactions,
		Budget:      budgets,
		Analysis:    NewAnalysisService(transactions, registry),
		Dashboard:   NewDashboardService(transactions, budgets, registry, analysis.NewSpendingTrendStrategy(clock)),
	}
}
