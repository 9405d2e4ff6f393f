package kpi

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/analysis"
)

// Result is the API response model for a computed KPI.
type Result struct {
	Type           string            `json:"type" doc:"KPI type, e.g. SAVINGS_RATE"`
	Value          string            `json:"value" doc:"Decimal value at its computed scale, e.g. 66.6700"`
	Unit           string            `json:"unit" enum:"CURRENCY,PERCENT" doc:"Unit of the value"`
	CalculatedAt   string            `json:"calculatedAt" format:"date" doc:"Date the KPI was calculated on"`
	Breakdown      map[string]string `json:"breakdown,omitempty" doc:"Per-key decimal breakdown, e.g. spending per category"`
	ReferenceValue *string           `json:"referenceValue,omitempty" doc:"Baseline the value was computed against"`
}

// NewResult converts an analysis result into its API model.
func NewResult(result analysis.Result) Result {
	resp := Result{
		Type:         result.Type.String(),
		Value:        result.Value.Value.StringFixed(result.Value.Scale()),
		Unit:         string(result.Value.Unit),
		CalculatedAt: result.CalculatedAt.Format(time.DateOnly),
	}

	if result.HasBreakdown() {
		resp.Breakdown = make(map[string]string, len(result.Breakdown))
		for key, value := range result.Breakdown {
			resp.Breakdown[key] = value.String()
		}
	}
	if result.HasReferenceValue() {
		reference := result.ReferenceValue.String()
		resp.ReferenceValue = &reference
	}
	return resp
}
