package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/httperr"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	UserID          string `json:"userID" format:"uuid" doc:"User UUID"`
	Category        string `json:"category,omitempty" doc:"Spending category, e.g. FOOD. Omit for uncategorized"`
	Amount          string `json:"amount" doc:"Signed decimal amount: income positive, expense negative"`
	TransactionName string `json:"transactionName" minLength:"1" doc:"Name of the transaction"`
	TransactionDate string `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction for a user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses the body into a service transaction.
// A missing transaction date is left zero so storage stamps it.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	category, err := analysis.ParseCategory(input.Body.Category)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return service.Transaction{
		UserID:          userID,
		Category:        category,
		Amount:          amount,
		TransactionName: input.Body.TransactionName,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	transaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
