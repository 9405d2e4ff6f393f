package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	UserID          string `json:"userID" doc:"User UUID"`
	Category        string `json:"category,omitempty" doc:"Spending category, absent when uncategorized"`
	Amount          string `json:"amount" doc:"Signed decimal amount: income positive, expense negative"`
	TransactionName string `json:"transactionName" doc:"Name of the transaction"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}
