package budget

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

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetBody is the request body fields for creating a budget.
type CreateBudgetBody struct {
	UserID      string `json:"userID" format:"uuid" doc:"User UUID"`
	Name        string `json:"name" minLength:"1" doc:"Budget name"`
	Category    string `json:"category" doc:"Spending category to limit, e.g. FOOD"`
	LimitAmount string `json:"limitAmount" doc:"Positive decimal spending limit"`
	PeriodStart string `json:"periodStart" format:"date" doc:"First day of the budget period, YYYY-MM-DD"`
	PeriodEnd   string `json:"periodEnd" format:"date" doc:"Last day of the budget period, YYYY-MM-DD"`
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

// CreateBudgetOutput is the response for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, budget service.Budget) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create a budget",
		Description: "Creates a spending limit for one category over a period.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (service.Budget, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	category, err := analysis.ParseCategory(input.Body.Category)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	if category == analysis.CategoryNone {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "category is required")
	}
	limit, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}
	start, err := time.Parse(time.DateOnly, input.Body.PeriodStart)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid periodStart", err)
	}
	end, err := time.Parse(time.DateOnly, input.Body.PeriodEnd)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, "invalid periodEnd", err)
	}
	period, err := analysis.NewPeriod(start, end)
	if err != nil {
		return service.Budget{}, huma.NewError(http.StatusBadRequest, err.Error())
	}

	return service.Budget{
		UserID:      userID,
		Name:        input.Body.Name,
		Category:    category,
		LimitAmount: limit,
		Period:      period,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	budget, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	id, err := h.BudgetService.CreateBudget(ctx, budget)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to create budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: id.String()},
	}, nil
}
