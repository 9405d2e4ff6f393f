package analysis

// Strategy computes one KPI from a collection of transactions.
//
// Implementations are pure: they never mutate their input and return the same
// Metric for the same transactions and the same day.
type Strategy interface {
	Supports() KpiType
	Analyze(transactions []*Transaction) (Metric, error)
}

// CategoryStrategy is a Strategy that can restrict its computation to one category.
type CategoryStrategy interface {
	Strategy
	AnalyzeCategory(transactions []*Transaction, category Category) (Metric, error)
}
