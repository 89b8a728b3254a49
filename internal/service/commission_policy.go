package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
)

var (
	highTierThreshold = decimal.NewFromInt(70000)
	highTierRate      = decimal.RequireFromString("0.01")
	baseRate          = decimal.RequireFromString("0.015")
)

// CommissionPolicy derives the commission ledger from funding transactions.
//
// Boundary marks the first day of the month treated as "current". Funding
// before it is paid on the 15th of the following month, funding inside it is
// paid for every sequence index not divisible by three, and anything later
// stays pending.
type CommissionPolicy struct {
	Boundary time.Time
}

// NewCommissionPolicy normalizes boundary to the first instant of its month in UTC.
func NewCommissionPolicy(boundary time.Time) CommissionPolicy {
	b := boundary.UTC()
	return CommissionPolicy{Boundary: time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// RateFor returns the commission rate applied to a funding amount.
func (p CommissionPolicy) RateFor(amount decimal.Decimal) decimal.Decimal {
	if amount.GreaterThanOrEqual(highTierThreshold) {
		return highTierRate
	}
	return baseRate
}

// Derive produces one commission per funding transaction, in transaction order.
func (p CommissionPolicy) Derive(transactions []domain.Transaction) []domain.Commission {
	boundaryEnd := p.Boundary.AddDate(0, 1, 0)
	boundaryPayout := payoutDate(p.Boundary)

	result := make([]domain.Commission, 0, len(transactions))
	seq := 1
	for _, txn := range transactions {
		if txn.Type != domain.TransactionFunding {
			continue
		}
		rate := p.RateFor(txn.Amount)
		created := txn.CreatedAt.UTC()

		commission := domain.Commission{
			ID:            fmt.Sprintf("comm-%03d", seq),
			AgentID:       txn.AgentID,
			ProspectID:    txn.ProspectID,
			TransactionID: txn.ID,
			Amount:        txn.Amount.Mul(rate).Round(2),
			Rate:          rate,
			Status:        domain.CommissionPending,
			Period:        created.Format("2006-01"),
			CreatedAt:     created.AddDate(0, 0, 1),
		}

		switch {
		case created.Before(p.Boundary):
			paidAt := payoutDate(created)
			commission.Status = domain.CommissionPaid
			commission.PaidAt = &paidAt
		case created.Before(boundaryEnd):
			if seq%3 != 0 {
				paidAt := boundaryPayout
				commission.Status = domain.CommissionPaid
				commission.PaidAt = &paidAt
			}
		}

		result = append(result, commission)
		seq++
	}
	return result
}

// payoutDate is 10:00 UTC on the 15th of the month after t.
func payoutDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 15, 10, 0, 0, 0, time.UTC)
}
