package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// CreateTransaction creates a new transaction through the operator and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	action := &actions.CreateTransaction{
		UserID:          transaction.UserID,
		Category:        transaction.Category,
		Amount:          transaction.Amount,
		TransactionName: transaction.TransactionName,
		TransactionDate: transaction.TransactionDate,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListTransactions returns a page of the user's transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          &userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}

// TransactionsForPeriod returns the user's transactions dated within the period
// as analysis views. The result is never nil.
func (s *TransactionService) TransactionsForPeriod(ctx context.Context, userID uuid.UUID, period analysis.Period) ([]*analysis.Transaction, error) {
	rows, err := s.storage.Transactions.ListForPeriod(ctx, userID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	views := make([]*analysis.Transaction, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		views = append(views, analysisTransactionFromStorage(row))
	}
	return views, nil
}
