package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = columnNames(
	"id", "user_id", "category", "amount", "transaction_name", "transaction_date", "created_at",
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(column("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, errors.Wrapf(err, "find transaction %s", id)
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	query := psql.Insert(
		im.Into(transactionsTableName, "user_id", "category", "amount", "transaction_name", "transaction_date"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Category),
			psql.Arg(create.Amount),
			psql.Arg(create.TransactionName),
			psql.Arg(transactionDate),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "insert transaction")
	}
	return id, nil
}

// List returns transactions matching the filter, newest first. Nil filter returns all.
// A positive limit fetches one extra row so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(column("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.Category != nil {
			queryMods = append(queryMods, sm.Where(column("category").EQ(psql.Arg(*filter.Category))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(column("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(column("created_at")).Desc(),
		sm.OrderBy(column("id")).Desc(),
	)

	return t.all(ctx, psql.Select(queryMods...))
}

// ListForPeriod returns every transaction of the user dated within [start, end], oldest first.
func (t *TransactionsTable) ListForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(column("user_id").EQ(psql.Arg(userID))),
		sm.Where(column("transaction_date").GTE(psql.Arg(start))),
		sm.Where(column("transaction_date").LTE(psql.Arg(end))),
		sm.OrderBy(column("transaction_date")).Asc(),
		sm.OrderBy(column("id")).Asc(),
	)
	return t.all(ctx, query)
}

func (t *TransactionsTable) all(ctx context.Context, query bob.Query) ([]*Transaction, error) {
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
