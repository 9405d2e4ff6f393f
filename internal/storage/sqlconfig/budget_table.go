package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const budgetsTableName = "budgets"

var budgetColumns = columnNames(
	"id", "user_id", "name", "category", "limit_amount", "period_start", "period_end", "created_at",
)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// Ensure BudgetsTable implements IBudgetTable at compile time.
var _ IBudgetTable = (*BudgetsTable)(nil)

// NewBudgetsTable creates a BudgetsTable on the given executor.
func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// FindByID retrieves a budget by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	query := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From(budgetsTableName),
		sm.Where(column("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, errors.Wrapf(err, "find budget %s", id)
	}
	return &row, nil
}

// Insert creates a new budget and returns its generated ID.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(budgetsTableName, "user_id", "name", "category", "limit_amount", "period_start", "period_end"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(create.Category),
			psql.Arg(create.LimitAmount),
			psql.Arg(create.PeriodStart),
			psql.Arg(create.PeriodEnd),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "insert budget")
	}
	return id, nil
}

// List returns budgets matching the filter ordered by period start. Nil filter returns all.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(budgetColumns...),
		sm.From(budgetsTableName),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(column("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.ActiveOn != nil {
			queryMods = append(queryMods,
				sm.Where(column("period_start").LTE(psql.Arg(*filter.ActiveOn))),
				sm.Where(column("period_end").GTE(psql.Arg(*filter.ActiveOn))),
			)
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(column("period_start")).Asc(),
		sm.OrderBy(column("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, errors.Wrap(err, "list budgets")
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
