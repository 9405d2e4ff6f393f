package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/analysis"
)

// transactionSource supplies the transactions an analysis runs over.
type transactionSource interface {
	TransactionsForPeriod(ctx context.Context, userID uuid.UUID, period analysis.Period) ([]*analysis.Transaction, error)
}

// AnalysisRequest asks for one KPI over a user's transactions in [Start, End].
type AnalysisRequest struct {
	UserID   uuid.UUID
	KpiType  string
	Start    time.Time
	End      time.Time
	Category string
}

// AnalysisService fetches transactions and dispatches KPI computations.
type AnalysisService struct {
	transactions transactionSource
	registry     *analysis.Registry
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(transactions transactionSource, registry *analysis.Registry) *AnalysisService {
	return &AnalysisService{transactions: transactions, registry: registry}
}

// Analyze validates the request before any transaction is fetched.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (analysis.Result, error) {
	kpiType, err := analysis.ParseKpiType(req.KpiType)
	if err != nil {
		return analysis.Result{}, err
	}
	category, err := analysis.ParseCategory(req.Category)
	if err != nil {
		return analysis.Result{}, err
	}
	period, err := requestPeriod(req.UserID, req.Start, req.End)
	if err != nil {
		return analysis.Result{}, err
	}

	transactions, err := s.transactions.TransactionsForPeriod(ctx, req.UserID, period)
	if err != nil {
		return analysis.Result{}, err
	}

	if category != analysis.CategoryNone {
		return s.registry.AnalyzeCategory(kpiType, transactions, category)
	}
	return s.registry.Analyze(kpiType, transactions)
}

func requestPeriod(userID uuid.UUID, start, end time.Time) (analysis.Period, error) {
	if userID == uuid.Nil {
		return analysis.Period{}, fmt.Errorf("%w: userID is required", analysis.ErrInvalidArgument)
	}
	if start.IsZero() || end.IsZero() {
		return analysis.Period{}, fmt.Errorf("%w: start and end are required", analysis.ErrInvalidArgument)
	}
	return analysis.NewPeriod(start, end)
}
