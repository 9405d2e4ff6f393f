package analysis

import (
	"strings"
)

// Unit tags a metric value.
type Unit string

const (
	UnitCurrency Unit = "CURRENCY"
	UnitPercent  Unit = "PERCENT"
)

// KpiType identifies a KPI and doubles as the dispatch key of the Registry.
type KpiType string

const (
	KpiSavingsRate            KpiType = "SAVINGS_RATE"
	KpiMonthlyAverageExpenses KpiType = "MONTHLY_AVERAGE_EXPENSES"
	KpiSpendingTrend          KpiType = "SPENDING_TREND"
)

var kpiUnits = map[KpiType]Unit{
	KpiSavingsRate:            UnitPercent,
	KpiMonthlyAverageExpenses: UnitCurrency,
	KpiSpendingTrend:          UnitPercent,
}

// KpiTypes returns every known KPI type in declaration order.
func KpiTypes() []KpiType {
	return []KpiType{KpiSavingsRate, KpiMonthlyAverageExpenses, KpiSpendingTrend}
}

// Unit returns the unit bound to the KPI type. Unknown types have no unit.
func (k KpiType) Unit() Unit {
	return kpiUnits[k]
}

// Valid reports whether k is one of the known KPI types.
func (k KpiType) Valid() bool {
	_, ok := kpiUnits[k]
	return ok
}

func (k KpiType) String() string {
	return string(k)
}

// ParseKpiType parses a KPI type name, ignoring case and surrounding whitespace.
func ParseKpiType(raw string) (KpiType, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalidArgument("kpi type must not be blank")
	}

	kpiType := KpiType(strings.ToUpper(name))
	if !kpiType.Valid() {
		return "", invalidArgument("unknown kpi type %q", raw)
	}
	return kpiType, nil
}
