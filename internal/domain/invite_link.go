package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InviteLink is a pre-configured, expiring onboarding token owned by an agent.
type InviteLink struct {
	ID               string
	AgentID          string
	Code             string
	URL              string
	Program          Program
	ClientType       ClientType
	CreditAvailable  bool
	CreditLineAmount decimal.Decimal
	UsedByProspectID *string
	UsedAt           *time.Time
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// Used reports whether a prospect redeemed the link.
func (l InviteLink) Used() bool {
	return l.UsedByProspectID != nil
}

// Expired reports whether the link can no longer be redeemed at now.
func (l InviteLink) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
