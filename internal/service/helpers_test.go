package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

var fixedNow = time.Date(2025, 7, 15, 12, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// inlineProcessor performs actions directly against the mocked tables.
type inlineProcessor struct {
	writer    *storage.Writer
	processed []actions.IAction
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.processed = append(p.processed, action)
	return action.Perform(ctx, p.writer)
}

type testStore struct {
	store        *storage.Storage
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	processor    *inlineProcessor
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)
	writer := &storage.Writer{Transactions: transactions, Budgets: budgets}
	return &testStore{
		store:        &storage.Storage{Transactions: transactions, Budgets: budgets},
		transactions: transactions,
		budgets:      budgets,
		processor:    &inlineProcessor{writer: writer},
	}
}

func newTestRegistry() *analysis.Registry {
	return analysis.DefaultRegistry(fixedClock)
}

func daysAgo(days int) time.Time {
	return fixedNow.AddDate(0, 0, -days)
}

func row(amount string, date time.Time, category analysis.Category) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          testUserID,
		Category:        string(category),
		Amount:          decimal.RequireFromString(amount),
		TransactionName: "Item",
		TransactionDate: date,
		CreatedAt:       date,
	}
}

// assertMetric checks the value including its scale.
func assertMetric(t *testing.T, expected string, unit analysis.Unit, metric analysis.Metric) {
	t.Helper()
	assert.Equal(t, expected, metric.Value.StringFixed(metric.Scale()))
	assert.Equal(t, unit, metric.Unit)
}
