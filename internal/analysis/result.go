package analysis

import (
	"maps"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a single KPI analysis.
type Result struct {
	Type           KpiType
	Value          Metric
	CalculatedAt   time.Time
	Breakdown      map[string]decimal.Decimal
	ReferenceValue *decimal.Decimal
}

// ResultOption sets an optional Result field.
type ResultOption func(*Result)

// WithBreakdown attaches a per-key breakdown. The map is copied.
func WithBreakdown(breakdown map[string]decimal.Decimal) ResultOption {
	return func(r *Result) {
		if breakdown == nil {
			r.Breakdown = nil
			return
		}
		r.Breakdown = maps.Clone(breakdown)
	}
}

// WithReferenceValue attaches a value to compare the result against.
func WithReferenceValue(value decimal.Decimal) ResultOption {
	return func(r *Result) {
		r.ReferenceValue = &value
	}
}

// NewResult creates a Result.
func NewResult(kpiType KpiType, value Metric, calculatedAt time.Time, opts ...ResultOption) Result {
	result := Result{
		Type:         kpiType,
		Value:        value,
		CalculatedAt: calculatedAt,
	}
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// With returns a copy of r with the options applied.
func (r Result) With(opts ...ResultOption) Result {
	out := r
	out.Breakdown = maps.Clone(r.Breakdown)
	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// HasBreakdown reports whether a non-empty breakdown is present.
func (r Result) HasBreakdown() bool {
	return len(r.Breakdown) > 0
}

// HasReferenceValue reports whether a reference value is present.
func (r Result) HasReferenceValue() bool {
	return r.ReferenceValue != nil
}
