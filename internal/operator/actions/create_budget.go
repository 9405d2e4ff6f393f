package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// CreateBudget records a spending limit for one category over a period.
type CreateBudget struct {
	UserID      uuid.UUID
	Name        string
	Category    analysis.Category
	LimitAmount decimal.Decimal
	Period      analysis.Period

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateBudget) Validate() error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidAction)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAction)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidAction, c.Category)
	}
	if !c.LimitAmount.IsPositive() {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidAction)
	}
	if c.Period.Start.IsZero() || c.Period.End.IsZero() {
		return fmt.Errorf("%w: period is required", ErrInvalidAction)
	}
	if c.Period.Start.After(c.Period.End) {
		return fmt.Errorf("%w: period start %s is after end %s", ErrInvalidAction,
			c.Period.Start.Format(time.DateOnly), c.Period.End.Format(time.DateOnly))
	}
	return nil
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	storageCreate := &sqlconfig.BudgetCreate{
		UserID:      c.UserID,
		Name:        c.Name,
		Category:    string(c.Category),
		LimitAmount: c.LimitAmount,
		PeriodStart: c.Period.Start,
		PeriodEnd:   c.Period.End,
	}
	id, err := writer.Budgets.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
