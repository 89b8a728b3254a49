package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProspectRegistered  EventType = "prospect_registered"
	EventInviteLinkGenerated EventType = "invite_link_generated"
	EventAgentSaved          EventType = "agent_saved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	AgentID   string    `json:"agent_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// ProspectRegisteredPayload payload.
type ProspectRegisteredPayload struct {
	ProspectID string            `json:"prospect_id"`
	Name       string            `json:"name"`
	ClientType domain.ClientType `json:"client_type"`
	Program    domain.Program    `json:"program"`
	InviteURL  string            `json:"invite_url"`
}

// InviteLinkGeneratedPayload payload.
type InviteLinkGeneratedPayload struct {
	LinkID     string            `json:"link_id"`
	Code       string            `json:"code"`
	URL        string            `json:"url"`
	ClientType domain.ClientType `json:"client_type"`
	ExpiresAt  time.Time         `json:"expires_at"`
}

// AgentSavedPayload payload.
type AgentSavedPayload struct {
	Created       bool               `json:"created"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Status        domain.AgentStatus `json:"status"`
	MaxCreditLine decimal.Decimal    `json:"max_credit_line"`
}
