package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-insights/internal/analysis"
)

const uncategorized = "UNCATEGORIZED"

type budgetSource interface {
	ActiveBudgets(ctx context.Context, userID uuid.UUID, day time.Time) ([]BudgetUsage, error)
}

// windowedStrategy exposes the two trend window totals behind a spending trend.
type windowedStrategy interface {
	WindowTotals(transactions []*analysis.Transaction) (previous, recent decimal.Decimal, err error)
}

// MonthlyCashFlow is the income and spending of one calendar month.
// Expenses is an absolute amount; Net is Income minus Expenses.
type MonthlyCashFlow struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Dashboard is the overview of a user's finances over a period.
type Dashboard struct {
	UserID                 uuid.UUID
	Period                 analysis.Period
	SavingsRate            analysis.Result
	MonthlyAverageExpenses analysis.Result
	SpendingTrend          analysis.Result
	CashFlow               []MonthlyCashFlow
	Budgets                []BudgetUsage
}

// DashboardService composes the KPIs, cash flow and budgets of a user.
type DashboardService struct {
	transactions transactionSource
	budgets      budgetSource
	registry     *analysis.Registry
	windows      windowedStrategy
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(transactions transactionSource, budgets budgetSource, registry *analysis.Registry, windows windowedStrategy) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		budgets:      budgets,
		registry:     registry,
		windows:      windows,
	}
}

// Overview builds the dashboard of userID for [start, end]. Budgets active on
// the last day of the period are included.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*Dashboard, error) {
	period, err := requestPeriod(userID, start, end)
	if err != nil {
		return nil, err
	}

	var transactions []*analysis.Transaction
	var budgets []BudgetUsage

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		transactions, err = s.transactions.TransactionsForPeriod(groupCtx, userID, period)
		return err
	})
	group.Go(func() error {
		var err error
		budgets, err = s.budgets.ActiveBudgets(groupCtx, userID, period.End)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		UserID:   userID,
		Period:   period,
		CashFlow: cashFlow(transactions),
		Budgets:  budgets,
	}

	if dashboard.SavingsRate, err = s.registry.Analyze(analysis.KpiSavingsRate, transactions); err != nil {
		return nil, err
	}

	average, err := s.registry.Analyze(analysis.KpiMonthlyAverageExpenses, transactions)
	if err != nil {
		return nil, err
	}
	dashboard.MonthlyAverageExpenses = average.With(analysis.WithBreakdown(spendingByCategory(transactions)))

	trend, err := s.registry.Analyze(analysis.KpiSpendingTrend, transactions)
	if err != nil {
		return nil, err
	}
	previous, _, err := s.windows.WindowTotals(transactions)
	if err != nil {
		return nil, err
	}
	dashboard.SpendingTrend = trend.With(analysis.WithReferenceValue(previous))

	return dashboard, nil
}

// spendingByCategory sums the absolute expenses per category.
func spendingByCategory(transactions []*analysis.Transaction) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		key := string(tx.Category)
		if tx.Category == analysis.CategoryNone {
			key = uncategorized
		}
		spending[key] = spending[key].Add(tx.Amount.Neg())
	}
	return spending
}

// cashFlow groups transactions by calendar month, oldest month first.
func cashFlow(transactions []*analysis.Transaction) []MonthlyCashFlow {
	byMonth := make(map[string]*MonthlyCashFlow)
	for _, tx := range transactions {
		month := tx.Date.Format("2006-01")
		flow, ok := byMonth[month]
		if !ok {
			flow = &MonthlyCashFlow{Month: month}
			byMonth[month] = flow
		}
		switch {
		case tx.IsIncome():
			flow.Income = flow.Income.Add(tx.Amount)
		case tx.IsExpense():
			flow.Expenses = flow.Expenses.Add(tx.Amount.Neg())
		}
	}

	flows := make([]MonthlyCashFlow, 0, len(byMonth))
	for _, flow := range byMonth {
		flow.Net = flow.Income.Sub(flow.Expenses)
		flows = append(flows, *flow)
	}
	slices.SortFunc(flows, func(a, b MonthlyCashFlow) int {
		return strings.Compare(a.Month, b.Month)
	})
	return flows
}
