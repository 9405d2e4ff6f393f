package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	exec         bob.DB
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}

	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		exec:         exec,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Budgets:      sqlconfig.NewBudgetsTable(exec),
	}, nil
}

// Write opens a database transaction and returns a Writer bound to it.
// The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
