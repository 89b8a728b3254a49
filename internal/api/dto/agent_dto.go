package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/service"
)

// SaveAgentRequest payload for agent create and update.
type SaveAgentRequest struct {
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	Phone               string             `json:"phone"`
	Status              domain.AgentStatus `json:"status"`
	CanReferVIP         bool               `json:"can_refer_vip"`
	CanReferStandard    bool               `json:"can_refer_standard"`
	CanGrantCredit      bool               `json:"can_grant_credit"`
	MaxCreditLineAmount decimal.Decimal    `json:"max_credit_line_amount"`
}

// AgentPermissionsResponse mirrors domain.AgentPermissions.
type AgentPermissionsResponse struct {
	CanReferVIP         bool            `json:"can_refer_vip"`
	CanReferStandard    bool            `json:"can_refer_standard"`
	CanGrantCredit      bool            `json:"can_grant_credit"`
	MaxCreditLineAmount decimal.Decimal `json:"max_credit_line_amount"`
}

// AgentResponse represents an agent.
type AgentResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	Status      domain.AgentStatus       `json:"status"`
	Permissions AgentPermissionsResponse `json:"permissions"`
	CreatedAt   time.Time                `json:"created_at"`
}

// AgentListItem is a roster row.
type AgentListItem struct {
	AgentResponse
	Stats service.AgentStats `json:"stats"`
}

// AgentDetailResponse is the admin agent page.
type AgentDetailResponse struct {
	Agent       AgentResponse        `json:"agent"`
	Stats       service.AgentStats   `json:"stats"`
	Prospects   []ProspectSummary    `json:"prospects"`
	Commissions []CommissionResponse `json:"commissions"`
}

// AgentPanelResponse is the agent portal landing view.
type AgentPanelResponse struct {
	Agent   AgentResponse           `json:"agent"`
	Stats   service.AgentStats      `json:"stats"`
	Monthly []service.MonthlyMetric `json:"monthly"`
}
