package accounts

import "time"

// AccountType enumerates supported account kinds.
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// Account is a bank account owned by a local user.
type Account struct {
	AccountNumber int64       `json:"accountNumber"`
	UserID        int64       `json:"userId"`
	AccountType   AccountType `json:"accountType"`
	BranchAddress string      `json:"branchAddress"`
	CreatedAt     time.Time   `json:"createdAt"`
}
