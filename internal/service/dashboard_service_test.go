package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func newTestDashboardService(t *testing.T) (*DashboardService, *testStore) {
	t.Helper()
	ts := newTestStore(t)
	transactions := NewTransactionService(ts.store, ts.processor)
	budgets := NewBudgetService(ts.store, ts.processor)
	svc := NewDashboardService(transactions, budgets, newTestRegistry(), analysis.NewSpendingTrendStrategy(fixedClock))
	return svc, ts
}

func TestOverview_ComposesKpis(t *testing.T) {
	svc, ts := newTestDashboardService(t)

	period, err := analysis.NewPeriod(daysAgo(60), fixedNow)
	require.NoError(t, err)
	ts.transactions.EXPECT().ListForPeriod(mock.Anything, testUserID, period.Start, period.End).Return([]*sqlconfig.Transaction{
		row("3000", daysAgo(10), analysis.CategorySalary),
		row("-100", daysAgo(5), analysis.CategoryFood),
		row("-50", daysAgo(40), analysis.CategoryNone),
		row("-200", daysAgo(40), analysis.CategoryHousing),
	}, nil)
	ts.budgets.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.BudgetFilter) bool {
		return f.ActiveOn != nil && f.ActiveOn.Equal(period.End)
	})).Return([]*sqlconfig.Budget{foodBudget("400")}, nil)
	ts.transactions.EXPECT().ListForPeriod(mock.Anything, testUserID, julyStart, julyEnd).Return([]*sqlconfig.Transaction{
		row("-100", daysAgo(5), analysis.CategoryFood),
	}, nil)

	dashboard, err := svc.Overview(context.Background(), testUserID, daysAgo(60), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, testUserID, dashboard.UserID)
	assert.Equal(t, period, dashboard.Period)

	assert.Equal(t, analysis.KpiSavingsRate, dashboard.SavingsRate.Type)
	assertMetric(t, "88.3300", analysis.UnitPercent, dashboard.SavingsRate.Value)

	average := dashboard.MonthlyAverageExpenses
	assertMetric(t, "-350.00", analysis.UnitCurrency, average.Value)
	require.True(t, average.HasBreakdown())
	assert.Equal(t, "100", average.Breakdown["FOOD"].String())
	assert.Equal(t, "200", average.Breakdown["HOUSING"].String())
	assert.Equal(t, "50", average.Breakdown[uncategorized].String())
	assert.NotContains(t, average.Breakdown, "SALARY")

	trend := dashboard.SpendingTrend
	assertMetric(t, "-60.0000", analysis.UnitPercent, trend.Value)
	require.True(t, trend.HasReferenceValue())
	assert.True(t, trend.ReferenceValue.Equal(decimal.NewFromInt(-250)))

	require.Len(t, dashboard.CashFlow, 2)
	june, july := dashboard.CashFlow[0], dashboard.CashFlow[1]
	assert.Equal(t, "2025-06", june.Month)
	assert.True(t, june.Income.IsZero())
	assert.Equal(t, "250", june.Expenses.String())
	assert.Equal(t, "-250", june.Net.String())
	assert.Equal(t, "2025-07", july.Month)
	assert.Equal(t, "3000", july.Income.String())
	assert.Equal(t, "100", july.Expenses.String())
	assert.Equal(t, "2900", july.Net.String())

	require.Len(t, dashboard.Budgets, 1)
	assert.Equal(t, "25.00", dashboard.Budgets[0].UsagePercentage.StringFixed(2))
}

func TestOverview_Empty(t *testing.T) {
	svc, ts := newTestDashboardService(t)

	ts.transactions.EXPECT().ListForPeriod(mock.Anything, testUserID, mock.Anything, mock.Anything).Return(nil, nil)
	ts.budgets.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	dashboard, err := svc.Overview(context.Background(), testUserID, daysAgo(30), fixedNow)
	require.NoError(t, err)

	assert.True(t, dashboard.SavingsRate.Value.Value.IsZero())
	assert.True(t, dashboard.MonthlyAverageExpenses.Value.Value.IsZero())
	assert.False(t, dashboard.MonthlyAverageExpenses.HasBreakdown())
	assert.True(t, dashboard.SpendingTrend.Value.Value.IsZero())
	assert.True(t, dashboard.SpendingTrend.ReferenceValue.IsZero())
	assert.Empty(t, dashboard.CashFlow)
	assert.Empty(t, dashboard.Budgets)
}

func TestOverview_InvalidPeriod(t *testing.T) {
	svc, _ := newTestDashboardService(t)

	_, err := svc.Overview(context.Background(), testUserID, fixedNow, daysAgo(1))

	assert.ErrorIs(t, err, analysis.ErrInvalidArgument)
}

func TestOverview_BudgetError(t *testing.T) {
	svc, ts := newTestDashboardService(t)

	ts.transactions.EXPECT().ListForPeriod(mock.Anything, testUserID, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	ts.budgets.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	_, err := svc.Overview(context.Background(), testUserID, daysAgo(30), fixedNow)

	assert.EqualError(t, err, "database unavailable")
}
