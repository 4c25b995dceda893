package loans

import "time"

// LoanType enumerates supported loan kinds.
type LoanType string

const (
	LoanTypeHome     LoanType = "HOME"
	LoanTypeVehicle  LoanType = "VEHICLE"
	LoanTypePersonal LoanType = "PERSONAL"
)

// LoanStatus tracks the approval lifecycle of a loan.
type LoanStatus string

const (
	StatusPending  LoanStatus = "PENDING"
	StatusApproved LoanStatus = "APPROVED"
)

// Loan is a loan issued to a local user.
type Loan struct {
	LoanNumber        int64      `json:"loanNumber"`
	UserID            int64      `json:"userId"`
	StartDate         time.Time  `json:"startDate"`
	LoanType          LoanType   `json:"loanType"`
	Status            LoanStatus `json:"status"`
	TotalLoan         float64    `json:"totalLoan"`
	AmountPaid        float64    `json:"amountPaid"`
	OutstandingAmount float64    `json:"outstandingAmount"`
	CreatedAt         time.Time  `json:"createdAt"`
}
