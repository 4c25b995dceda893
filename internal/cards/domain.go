package cards

import "time"

// CardType enumerates supported card kinds.
type CardType string

const (
	CardTypeCredit CardType = "CREDIT"
	CardTypeDebit  CardType = "DEBIT"
)

// CardStatus tracks the lifecycle of an issued card.
type CardStatus string

const (
	StatusInactive CardStatus = "INACTIVE"
	StatusActive   CardStatus = "ACTIVE"
	StatusBlocked  CardStatus = "BLOCKED"
)

// Card is a payment card issued to a local user.
type Card struct {
	CardID          int64      `json:"cardId"`
	UserID          int64      `json:"userId"`
	CardNumber      string     `json:"cardNumber"`
	CardType        CardType   `json:"cardType"`
	Status          CardStatus `json:"status"`
	TotalLimit      float64    `json:"totalLimit"`
	AmountUsed      float64    `json:"amountUsed"`
	AvailableAmount float64    `json:"availableAmount"`
	CreatedAt       time.Time  `json:"createdAt"`
}
