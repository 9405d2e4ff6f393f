package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/httperr"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/kpi"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

// OverviewBody is the request body for the dashboard.
type OverviewBody struct {
	UserID string `json:"userID" format:"uuid" doc:"User UUID"`
	Start  string `json:"start" format:"date" doc:"First day of the period, YYYY-MM-DD"`
	End    string `json:"end" format:"date" doc:"Last day of the period, YYYY-MM-DD"`
}

// OverviewInput is the Huma input for the dashboard.
type OverviewInput struct {
	Body OverviewBody
}

// CashFlow is the API model of one calendar month of cash flow.
type CashFlow struct {
	Month    string `json:"month" doc:"Calendar month, YYYY-MM"`
	Income   string `json:"income" doc:"Decimal income of the month"`
	Expenses string `json:"expenses" doc:"Decimal absolute expenses of the month"`
	Net      string `json:"net" doc:"Income minus expenses"`
}

// OverviewResponseBody is the response body for the dashboard.
type OverviewResponseBody struct {
	UserID                 string         `json:"userID" doc:"User UUID"`
	Start                  string         `json:"start" format:"date" doc:"First day of the period"`
	End                    string         `json:"end" format:"date" doc:"Last day of the period"`
	SavingsRate            kpi.Result     `json:"savingsRate" doc:"Savings rate over the period"`
	MonthlyAverageExpenses kpi.Result     `json:"monthlyAverageExpenses" doc:"Monthly average expense, broken down by category"`
	SpendingTrend          kpi.Result     `json:"spendingTrend" doc:"Spending trend, referencing the previous window total"`
	CashFlow               []CashFlow     `json:"cashFlow" doc:"Cash flow per calendar month, oldest first"`
	Budgets                []budget.Usage `json:"budgets" doc:"Budgets active on the last day of the period"`
}

// OverviewOutput is the Huma output for the dashboard.
type OverviewOutput struct {
	Body OverviewResponseBody
}

type overviewer interface {
	Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*service.Dashboard, error)
}

// OverviewHandler handles POST /v1/dashboard.
type OverviewHandler struct {
	DashboardService overviewer
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(svc overviewer) *OverviewHandler {
	return &OverviewHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *OverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-overview",
		Method:      http.MethodPost,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard overview",
		Description: "Returns every KPI, the monthly cash flow and the active budgets of a user for a period.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *OverviewHandler) handle(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	start, err := time.Parse(time.DateOnly, input.Body.Start)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	end, err := time.Parse(time.DateOnly, input.Body.End)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("overviewMs")
	}
	dashboard, err := h.DashboardService.Overview(ctx, userID, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to build dashboard", err)
	}

	return &OverviewOutput{Body: newOverviewResponse(dashboard)}, nil
}

func newOverviewResponse(dashboard *service.Dashboard) OverviewResponseBody {
	resp := OverviewResponseBody{
		UserID:                 dashboard.UserID.String(),
		Start:                  dashboard.Period.Start.Format(time.DateOnly),
		End:                    dashboard.Period.End.Format(time.DateOnly),
		SavingsRate:            kpi.NewResult(dashboard.SavingsRate),
		MonthlyAverageExpenses: kpi.NewResult(dashboard.MonthlyAverageExpenses),
		SpendingTrend:          kpi.NewResult(dashboard.SpendingTrend),
		CashFlow:               make([]CashFlow, len(dashboard.CashFlow)),
		Budgets:                make([]budget.Usage, len(dashboard.Budgets)),
	}

	for i, flow := range dashboard.CashFlow {
		resp.CashFlow[i] = CashFlow{
			Month:    flow.Month,
			Income:   flow.Income.String(),
			Expenses: flow.Expenses.String(),
			Net:      flow.Net.String(),
		}
	}
	for i, usage := range dashboard.Budgets {
		resp.Budgets[i] = budget.NewUsage(usage)
	}
	return resp
}
