package budget

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/service"
)

// Usage is the API response model for a budget and its spending.
type Usage struct {
	ID              string `json:"id" doc:"Budget UUID"`
	Name            string `json:"name" doc:"Budget name"`
	Category        string `json:"category" doc:"Spending category the budget limits"`
	LimitAmount     string `json:"limitAmount" doc:"Decimal spending limit"`
	PeriodStart     string `json:"periodStart" format:"date" doc:"First day of the budget period"`
	PeriodEnd       string `json:"periodEnd" format:"date" doc:"Last day of the budget period"`
	Spent           string `json:"spent" doc:"Decimal amount spent in the category during the period"`
	Remaining       string `json:"remaining" doc:"Decimal amount left before the limit, never negative"`
	UsagePercentage string `json:"usagePercentage" doc:"Spent relative to the limit, 2 decimals, capped at 100"`
}

// NewUsage converts a service budget usage into its API model.
func NewUsage(usage service.BudgetUsage) Usage {
	return Usage{
		ID:              usage.Budget.ID.String(),
		Name:            usage.Budget.Name,
		Category:        string(usage.Budget.Category),
		LimitAmount:     usage.Budget.LimitAmount.String(),
		PeriodStart:     usage.Budget.Period.Start.Format(time.DateOnly),
		PeriodEnd:       usage.Budget.Period.End.Format(time.DateOnly),
		Spent:           usage.Spent.String(),
		Remaining:       usage.Remaining.String(),
		UsagePercentage: usage.UsagePercentage.StringFixed(2),
	}
}
