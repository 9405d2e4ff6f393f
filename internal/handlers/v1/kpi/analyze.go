package kpi

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/httperr"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

// AnalyzeBody is the request body for computing a KPI.
type AnalyzeBody struct {
	UserID   string `json:"userID" format:"uuid" doc:"User UUID"`
	KpiType  string `json:"kpiType" doc:"SAVINGS_RATE, MONTHLY_AVERAGE_EXPENSES or SPENDING_TREND, case-insensitive"`
	Start    string `json:"start" format:"date" doc:"First day of the period, YYYY-MM-DD"`
	End      string `json:"end" format:"date" doc:"Last day of the period, YYYY-MM-DD"`
	Category string `json:"category,omitempty" doc:"Restrict the KPI to one spending category"`
}

// AnalyzeInput is the Huma input for computing a KPI.
type AnalyzeInput struct {
	Body AnalyzeBody
}

// AnalyzeOutput is the Huma output for computing a KPI.
type AnalyzeOutput struct {
	Body Result
}

type analyzer interface {
	Analyze(ctx context.Context, req service.AnalysisRequest) (analysis.Result, error)
}

// AnalyzeHandler handles POST /v1/analysis.
type AnalyzeHandler struct {
	AnalysisService analyzer
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(svc analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{AnalysisService: svc}
}

// Register registers the analysis endpoint with the Huma API.
func (h *AnalyzeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-kpi",
		Method:      http.MethodPost,
		Path:        "/v1/analysis",
		Summary:     "Compute a KPI",
		Description: "Computes one KPI over the user's transactions dated within the period.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func parseAnalyzeInput(input *AnalyzeInput) (service.AnalysisRequest, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return service.AnalysisRequest{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	start, err := time.Parse(time.DateOnly, input.Body.Start)
	if err != nil {
		return service.AnalysisRequest{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	end, err := time.Parse(time.DateOnly, input.Body.End)
	if err != nil {
		return service.AnalysisRequest{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}

	return service.AnalysisRequest{
		UserID:   userID,
		KpiType:  input.Body.KpiType,
		Start:    start,
		End:      end,
		Category: input.Body.Category,
	}, nil
}

func (h *AnalyzeHandler) handle(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseAnalyzeInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("kpiType", req.KpiType)
		stopTimer = logData.AddTiming("analyzeMs")
	}
	result, err := h.AnalysisService.Analyze(ctx, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to analyze", err)
	}

	return &AnalyzeOutput{Body: NewResult(result)}, nil
}
