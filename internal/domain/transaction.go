package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes wallet top-ups from card spending.
type TransactionType string

const (
	TransactionFunding      TransactionType = "funding"
	TransactionCardPurchase TransactionType = "card_purchase"
)

// Transaction is a money movement attributed to a prospect and its agent.
type Transaction struct {
	ID          string
	ProspectID  string
	AgentID     string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
