package analysis

import (
	"fmt"
)

// Registry dispatches KPI requests to the strategy registered for the KPI type.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	clock      Clock
	strategies map[KpiType]Strategy
}

// NewRegistry indexes the strategies by the KPI type they support.
// Registering two strategies for the same type is a configuration error.
func NewRegistry(clock Clock, strategies ...Strategy) (*Registry, error) {
	indexed := make(map[KpiType]Strategy, len(strategies))
	for _, strategy := range strategies {
		if strategy == nil {
			return nil, fmt.Errorf("%w: nil strategy", ErrConfiguration)
		}
		kpiType := strategy.Supports()
		if !kpiType.Valid() {
			return nil, fmt.Errorf("%w: strategy %T supports unknown kpi type %q", ErrConfiguration, strategy, kpiType)
		}
		if existing, ok := indexed[kpiType]; ok {
			return nil, fmt.Errorf("%w: duplicate strategies for %s: %T and %T", ErrConfiguration, kpiType, existing, strategy)
		}
		indexed[kpiType] = strategy
	}

	return &Registry{
		clock:      clock,
		strategies: indexed,
	}, nil
}

// DefaultRegistry wires the built-in strategies.
func DefaultRegistry(clock Clock) *Registry {
	registry, err := NewRegistry(
		clock,
		NewSavingsRateStrategy(),
		NewMonthlyAverageExpenseStrategy(clock),
		NewSpendingTrendStrategy(clock),
	)
	if err != nil {
		panic(err)
	}
	return registry
}

// Supports reports whether a strategy is registered for kpiType.
func (r *Registry) Supports(kpiType KpiType) bool {
	_, ok := r.strategies[kpiType]
	return ok
}

// Analyze computes kpiType over the transactions.
func (r *Registry) Analyze(kpiType KpiType, transactions []*Transaction) (Result, error) {
	strategy, err := r.lookup(kpiType)
	if err != nil {
		return Result{}, err
	}

	metric, err := strategy.Analyze(transactions)
	if err != nil {
		return Result{}, err
	}
	return NewResult(kpiType, metric, r.clock.today()), nil
}

// AnalyzeCategory computes kpiType over the transactions of one category.
// It fails with ErrUnsupportedKpi when the strategy has no category form.
func (r *Registry) AnalyzeCategory(kpiType KpiType, transactions []*Transaction, category Category) (Result, error) {
	strategy, err := r.lookup(kpiType)
	if err != nil {
		return Result{}, err
	}

	categoryStrategy, ok := strategy.(CategoryStrategy)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s cannot be filtered by category", ErrUnsupportedKpi, kpiType)
	}

	metric, err := categoryStrategy.AnalyzeCategory(transactions, category)
	if err != nil {
		return Result{}, err
	}
	return NewResult(kpiType, metric, r.clock.today()), nil
}

func (r *Registry) lookup(kpiType KpiType) (Strategy, error) {
	if kpiType == "" {
		return nil, invalidArgument("kpi type must not be empty")
	}
	strategy, ok := r.strategies[kpiType]
	if !ok {
		return nil, fmt.Errorf("%w: no strategy registered for %s", ErrUnsupportedKpi, kpiType)
	}
	return strategy, nil
}
