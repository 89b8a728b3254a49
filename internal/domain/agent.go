package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentStatus represents the account lifecycle of a referring agent.
type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
)

// AgentPermissions gates which client types and credit lines an agent may offer.
type AgentPermissions struct {
	CanReferVIP         bool
	CanReferStandard    bool
	CanGrantCredit      bool
	MaxCreditLineAmount decimal.Decimal
}

// AllowsClientType reports whether the agent may refer the given client type.
func (p AgentPermissions) AllowsClientType(clientType ClientType) bool {
	switch clientType {
	case ClientTypeVIP:
		return p.CanReferVIP
	case ClientTypeStandard:
		return p.CanReferStandard
	}
	return false
}

// Agent is the referring party.
type Agent struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Status      AgentStatus
	Permissions AgentPermissions
	CreatedAt   time.Time
}
