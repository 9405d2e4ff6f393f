package analysis

import (
	"github.com/shopspring/decimal"
)

// Metric is a unit-tagged KPI value. Value keeps the scale it was computed at.
type Metric struct {
	Value decimal.Decimal
	Unit  Unit
}

// NewMetric creates a Metric.
func NewMetric(value decimal.Decimal, unit Unit) Metric {
	return Metric{Value: value, Unit: unit}
}

// ZeroMetric returns 0 in the given unit.
func ZeroMetric(unit Unit) Metric {
	return Metric{Value: decimal.Zero, Unit: unit}
}

// Scale returns the number of fractional digits Value carries.
func (m Metric) Scale() int32 {
	if m.Value.Exponent() >= 0 {
		return 0
	}
	return -m.Value.Exponent()
}

// String formats the value at its own scale, e.g. "66.6700 PERCENT".
func (m Metric) String() string {
	return m.Value.StringFixed(m.Scale()) + " " + string(m.Unit)
}
