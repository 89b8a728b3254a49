package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
)

// RegisterProspectRequest payload.
type RegisterProspectRequest struct {
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email"`
	ClientType       domain.ClientType `json:"client_type"`
	Program          domain.Program    `json:"program"`
	CreditAvailable  bool              `json:"credit_available"`
	CreditLineAmount decimal.Decimal   `json:"credit_line_amount"`
}

// InviteLinkRequest payload.
type InviteLinkRequest struct {
	ClientType       domain.ClientType `json:"client_type"`
	Program          domain.Program    `json:"program"`
	CreditAvailable  bool              `json:"credit_available"`
	CreditLineAmount decimal.Decimal   `json:"credit_line_amount"`
}

// StatusHistoryItem is one funnel milestone.
type StatusHistoryItem struct {
	Status    domain.ReferralStatus `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
}

// ProspectSummary is a referral list row.
type ProspectSummary struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Phone            string                `json:"phone"`
	Email            string                `json:"email"`
	ClientType       domain.ClientType     `json:"client_type"`
	Program          domain.Program        `json:"program"`
	Status           domain.ReferralStatus `json:"status"`
	ReferredByAgent  string                `json:"referred_by_agent"`
	ReferralMethod   domain.ReferralMethod `json:"referral_method"`
	CreditAvailable  bool                  `json:"credit_available"`
	CreditLineAmount decimal.Decimal       `json:"credit_line_amount"`
	CreatedAt        time.Time             `json:"created_at"`
}

// ProspectDetailResponse provides full prospect info.
type ProspectDetailResponse struct {
	ProspectSummary
	InviteLinkID  *string               `json:"invite_link_id"`
	StatusHistory []StatusHistoryItem   `json:"status_history"`
	Agent         *AgentResponse        `json:"agent,omitempty"`
	Transactions  []TransactionResponse `json:"transactions"`
	Commissions   []CommissionResponse  `json:"commissions"`
}

// ProspectDraftResponse is returned by the simulated registration.
type ProspectDraftResponse struct {
	Prospect  ProspectDetailResponse `json:"prospect"`
	InviteURL string                 `json:"invite_url"`
	Share     ShareLinksResponse     `json:"share"`
}

// ShareLinksResponse holds prefilled messaging URLs.
type ShareLinksResponse struct {
	WhatsApp string `json:"whatsapp"`
	SMS      string `json:"sms"`
}

// TransactionResponse represents a money movement.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	ProspectID  string                 `json:"prospect_id"`
	AgentID     string                 `json:"agent_id"`
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"created_at"`
}

// CommissionResponse represents a ledger entry.
type CommissionResponse struct {
	ID            string                  `json:"id"`
	AgentID       string                  `json:"agent_id"`
	ProspectID    string                  `json:"prospect_id"`
	TransactionID string                  `json:"transaction_id"`
	Amount        decimal.Decimal         `json:"amount"`
	Rate          decimal.Decimal         `json:"rate"`
	Status        domain.CommissionStatus `json:"status"`
	Period        string                  `json:"period"`
	PaidAt        *time.Time              `json:"paid_at"`
	CreatedAt     time.Time               `json:"created_at"`
}

// CommissionTotals summarizes a ledger slice.
type CommissionTotals struct {
	Generated decimal.Decimal `json:"generated"`
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"`
}

// InviteLinkResponse represents an invite link.
type InviteLinkResponse struct {
	ID               string            `json:"id"`
	AgentID          string            `json:"agent_id"`
	Code             string            `json:"code"`
	URL              string            `json:"url"`
	Program          domain.Program    `json:"program"`
	ClientType       domain.ClientType `json:"client_type"`
	CreditAvailable  bool              `json:"credit_available"`
	CreditLineAmount decimal.Decimal   `json:"credit_line_amount"`
	Used             bool              `json:"used"`
	Expired          bool              `json:"expired"`
	UsedByProspectID *string           `json:"used_by_prospect_id"`
	UsedAt           *time.Time        `json:"used_at"`
	CreatedAt        time.Time         `json:"created_at"`
	ExpiresAt        time.Time         `json:"expires_at"`
}

// InviteLinkDraftResponse is returned by the simulated link generation.
type InviteLinkDraftResponse struct {
	Link  InviteLinkResponse `json:"link"`
	Share ShareLinksResponse `json:"share"`
}

// PageMeta describes a paginated listing.
type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}
