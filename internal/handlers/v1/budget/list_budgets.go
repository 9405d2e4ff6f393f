package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/httperr"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

// ListBudgetsBody is the request body for listing budgets.
type ListBudgetsBody struct {
	UserID string `json:"userID" format:"uuid" doc:"User UUID"`
}

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Body ListBudgetsBody
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Usage `json:"budgets" doc:"Budgets of the user with their usage"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]service.BudgetUsage, error)
}

// ListBudgetsHandler handles POST /v1/budget/list.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodPost,
		Path:        "/v1/budget/list",
		Summary:     "List budgets",
		Description: "Returns every budget of the user with the amount spent against it.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	usages, err := h.BudgetService.ListBudgets(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to list budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(usages))
	}

	resp := ListBudgetsResponseBody{Budgets: make([]Usage, len(usages))}
	for i, usage := range usages {
		resp.Budgets[i] = NewUsage(usage)
	}
	return &ListBudgetsOutput{Body: resp}, nil
}
