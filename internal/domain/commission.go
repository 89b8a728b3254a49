package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus tracks payout state.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

// Commission is derived from exactly one funding transaction.
type Commission struct {
	ID            string
	AgentID       string
	ProspectID    string
	TransactionID string
	Amount        decimal.Decimal
	Rate          decimal.Decimal
	Status        CommissionStatus
	Period        string
	PaidAt        *time.Time
	CreatedAt     time.Time
}
