package dashboard

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

type mockOverviewer struct {
	mock.Mock
}

func (m *mockOverviewer) Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*service.Dashboard, error) {
	args := m.Called(ctx, userID, start, end)
	dashboard, _ := args.Get(0).(*service.Dashboard)
	return dashboard, args.Error(1)
}

func newTestAPI(t *testing.T, svc overviewer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewOverviewHandler(svc).Register(api)
	return api
}

var (
	periodStart = time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
)

func percent(kpiType analysis.KpiType, value string) analysis.Result {
	return analysis.NewResult(kpiType, analysis.NewMetric(decimal.RequireFromString(value), analysis.UnitPercent), periodEnd)
}

func TestHTTP_Overview_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	average := analysis.NewResult(
		analysis.KpiMonthlyAverageExpenses,
		analysis.NewMetric(decimal.RequireFromString("-350.00"), analysis.UnitCurrency),
		periodEnd,
		analysis.WithBreakdown(map[string]decimal.Decimal{"FOOD": decimal.NewFromInt(100)}),
	)
	dashboard := &service.Dashboard{
		UserID:                 userID,
		Period:                 analysis.Period{Start: periodStart, End: periodEnd},
		SavingsRate:            percent(analysis.KpiSavingsRate, "88.3300"),
		MonthlyAverageExpenses: average,
		SpendingTrend:          percent(analysis.KpiSpendingTrend, "-60.0000").With(analysis.WithReferenceValue(decimal.NewFromInt(-250))),
		CashFlow: []service.MonthlyCashFlow{
			{Month: "2025-07", Income: decimal.NewFromInt(3000), Expenses: decimal.NewFromInt(100), Net: decimal.NewFromInt(2900)},
		},
	}

	mockSvc := new(mockOverviewer)
	mockSvc.On("Overview", mock.Anything, userID, periodStart, periodEnd).Return(dashboard, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/dashboard", OverviewBody{
		UserID: userID.String(),
		Start:  "2025-05-16",
		End:    "2025-07-15",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body OverviewResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.UserID)
	assert.Equal(t, "88.3300", body.SavingsRate.Value)
	assert.Equal(t, "-350.00", body.MonthlyAverageExpenses.Value)
	assert.Equal(t, map[string]string{"FOOD": "100"}, body.MonthlyAverageExpenses.Breakdown)
	assert.Equal(t, "-60.0000", body.SpendingTrend.Value)
	require.NotNil(t, body.SpendingTrend.ReferenceValue)
	assert.Equal(t, "-250", *body.SpendingTrend.ReferenceValue)
	require.Len(t, body.CashFlow, 1)
	assert.Equal(t, "2900", body.CashFlow[0].Net)
	assert.Empty(t, body.Budgets)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Overview_InvalidPeriod(t *testing.T) {
	mockSvc := new(mockOverviewer)
	mockSvc.On("Overview", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: period start 2025-07-15 is after end 2025-05-16", analysis.ErrInvalidArgument))

	resp := newTestAPI(t, mockSvc).Post("/v1/dashboard", OverviewBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Start:  "2025-07-15",
		End:    "2025-05-16",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Overview_ServiceError(t *testing.T) {
	mockSvc := new(mockOverviewer)
	mockSvc.On("Overview", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/dashboard", OverviewBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Start:  "2025-05-16",
		End:    "2025-07-15",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
