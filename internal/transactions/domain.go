package transactions

import "time"

// TransactionType enumerates ledger entry directions.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is one ledger entry against an account.
type Transaction struct {
	ID             string          `json:"transactionId"`
	AccountNumber  int64           `json:"accountNumber"`
	UserID         int64           `json:"userId"`
	Date           time.Time       `json:"transactionDate"`
	Summary        string          `json:"summary"`
	Type           TransactionType `json:"type"`
	Amount         float64         `json:"amount"`
	ClosingBalance float64         `json:"closingBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BalanceSummary aggregates over all of a user's transactions, not just the
// current page.
type BalanceSummary struct {
	CurrentBalance   float64 `json:"currentBalance"`
	TotalCredits     float64 `json:"totalCredits"`
	TotalDebits      float64 `json:"totalDebits"`
	TransactionCount int64   `json:"transactionCount"`
}
