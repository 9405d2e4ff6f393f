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

// CreateTransaction records a signed transaction: income positive, expense negative.
type CreateTransaction struct {
	UserID          uuid.UUID
	Category        analysis.Category
	Amount          decimal.Decimal
	TransactionName string
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Validate() error {
	if t.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidAction)
	}
	if t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", ErrInvalidAction)
	}
	if t.Category != analysis.CategoryNone && !t.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidAction, t.Category)
	}
	return nil
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.Validate(); err != nil {
		return err
	}

	storageCreate := &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		Category:        string(t.Category),
		Amount:          t.Amount,
		TransactionName: t.TransactionName,
		TransactionDate: t.TransactionDate,
	}
	id, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
