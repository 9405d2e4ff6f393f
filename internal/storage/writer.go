package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Finisher ends a database transaction.
type Finisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxExecutor is a database transaction the tables can run queries on.
type TxExecutor interface {
	bob.Executor
	Finisher
}

// Writer exposes the tables through a single database transaction.
type Writer struct {
	Tx           Finisher
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewWriter(tx TxExecutor) *Writer {
	return &Writer{
		Tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
