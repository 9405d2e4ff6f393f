package kpi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/analysis"
	"github.com/carson-networks/budget-insights/internal/service"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context, req service.AnalysisRequest) (analysis.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(analysis.Result)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc analyzer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAnalyzeHandler(svc).Register(api)
	return api
}

var calculatedAt = time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

func validBody(userID uuid.UUID) AnalyzeBody {
	return AnalyzeBody{
		UserID:  userID.String(),
		KpiType: "savings_rate",
		Start:   "2025-05-16",
		End:     "2025-07-15",
	}
}

func TestParseAnalyzeInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	body := validBody(userID)
	body.Category = "FOOD"

	req, err := parseAnalyzeInput(&AnalyzeInput{Body: body})

	require.NoError(t, err)
	assert.Equal(t, userID, req.UserID)
	assert.Equal(t, "savings_rate", req.KpiType)
	assert.Equal(t, time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC), req.Start)
	assert.Equal(t, calculatedAt, req.End)
	assert.Equal(t, "FOOD", req.Category)
}

func TestHTTP_Analyze_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	result := analysis.NewResult(
		analysis.KpiSavingsRate,
		analysis.NewMetric(decimal.RequireFromString("66.6700"), analysis.UnitPercent),
		calculatedAt,
	)

	mockSvc := new(mockAnalyzer)
	mockSvc.On("Analyze", mock.Anything, mock.MatchedBy(func(req service.AnalysisRequest) bool {
		return req.UserID == userID && req.KpiType == "savings_rate"
	})).Return(result, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/analysis", validBody(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SAVINGS_RATE", body.Type)
	assert.Equal(t, "66.6700", body.Value)
	assert.Equal(t, "PERCENT", body.Unit)
	assert.Equal(t, "2025-07-15", body.CalculatedAt)
	assert.Nil(t, body.Breakdown)
	assert.Nil(t, body.ReferenceValue)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Analyze_InvalidArgument(t *testing.T) {
	mockSvc := new(mockAnalyzer)
	mockSvc.On("Analyze", mock.Anything, mock.Anything).
		Return(analysis.Result{}, fmt.Errorf("%w: unknown kpi type %q", analysis.ErrInvalidArgument, "NET_WORTH"))

	body := validBody(uuid.Must(uuid.NewV4()))
	body.KpiType = "NET_WORTH"
	resp := newTestAPI(t, mockSvc).Post("/v1/analysis", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Analyze_Unsupported(t *testing.T) {
	mockSvc := new(mockAnalyzer)
	mockSvc.On("Analyze", mock.Anything, mock.Anything).
		Return(analysis.Result{}, fmt.Errorf("%w: SAVINGS_RATE has no category form", analysis.ErrUnsupportedKpi))

	resp := newTestAPI(t, mockSvc).Post("/v1/analysis", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_Analyze_ServiceError(t *testing.T) {
	mockSvc := new(mockAnalyzer)
	mockSvc.On("Analyze", mock.Anything, mock.Anything).
		Return(analysis.Result{}, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/analysis", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_Analyze_InvalidDate(t *testing.T) {
	mockSvc := new(mockAnalyzer)

	// Huma's format:"date" schema validation rejects this before the handler runs.
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Start = "15/07/2025"
	resp := newTestAPI(t, mockSvc).Post("/v1/analysis", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Analyze")
}
