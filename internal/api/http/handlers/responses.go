package handlers

import (
	"time"

	"github.com/olimpo/referrals/internal/api/dto"
	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/service"
)

func agentResponse(agent domain.Agent) dto.AgentResponse {
	return dto.AgentResponse{
		ID:     agent.ID,
		Name:   agent.Name,
		Email:  agent.Email,
		Phone:  agent.Phone,
		Status: agent.Status,
		Permissions: dto.AgentPermissionsResponse{
			CanReferVIP:         agent.Permissions.CanReferVIP,
			CanReferStandard:    agent.Permissions.CanReferStandard,
			CanGrantCredit:      agent.Permissions.CanGrantCredit,
			MaxCreditLineAmount: agent.Permissions.MaxCreditLineAmount,
		},
		CreatedAt: agent.CreatedAt,
	}
}

func prospectSummary(p domain.Prospect) dto.ProspectSummary {
	return dto.ProspectSummary{
		ID:               p.ID,
		Name:             p.Name,
		Phone:            p.Phone,
		Email:            p.Email,
		ClientType:       p.ClientType,
		Program:          p.Program,
		Status:           p.Status,
		ReferredByAgent:  p.ReferredByAgent,
		ReferralMethod:   p.ReferralMethod,
		CreditAvailable:  p.CreditAvailable,
		CreditLineAmount: p.CreditLineAmount,
		CreatedAt:        p.CreatedAt,
	}
}

func prospectSummaries(prospects []domain.Prospect) []dto.ProspectSummary {
	items := make([]dto.ProspectSummary, 0, len(prospects))
	for _, p := range prospects {
		items = append(items, prospectSummary(p))
	}
	return items
}

func prospectDetail(p domain.Prospect) dto.ProspectDetailResponse {
	history := make([]dto.StatusHistoryItem, 0, len(p.StatusHistory))
	for _, entry := range p.StatusHistory {
		history = append(history, dto.StatusHistoryItem{Status: entry.Status, Timestamp: entry.Timestamp})
	}
	return dto.ProspectDetailResponse{
		ProspectSummary: prospectSummary(p),
		InviteLinkID:    p.InviteLinkID,
		StatusHistory:   history,
		Transactions:    []dto.TransactionResponse{},
		Commissions:     []dto.CommissionResponse{},
	}
}

func referralDetail(detail *service.ReferralDetail) dto.ProspectDetailResponse {
	resp := prospectDetail(detail.Prospect)
	agent := agentResponse(detail.Agent)
	resp.Agent = &agent
	resp.Transactions = transactionResponses(detail.Transactions)
	resp.Commissions = commissionResponses(detail.Commissions)
	return resp
}

func transactionResponses(txns []domain.Transaction) []dto.TransactionResponse {
	items := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		items = append(items, dto.TransactionResponse{
			ID:          t.ID,
			ProspectID:  t.ProspectID,
			AgentID:     t.AgentID,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return items
}

func commissionResponses(comms []domain.Commission) []dto.CommissionResponse {
	items := make([]dto.CommissionResponse, 0, len(comms))
	for _, c := range comms {
		items = append(items, dto.CommissionResponse{
			ID:            c.ID,
			AgentID:       c.AgentID,
			ProspectID:    c.ProspectID,
			TransactionID: c.TransactionID,
			Amount:        c.Amount,
			Rate:          c.Rate,
			Status:        c.Status,
			Period:        c.Period,
			PaidAt:        c.PaidAt,
			CreatedAt:     c.CreatedAt,
		})
	}
	return items
}

func inviteLinkResponse(l domain.InviteLink, now time.Time) dto.InviteLinkResponse {
	return dto.InviteLinkResponse{
		ID:               l.ID,
		AgentID:          l.AgentID,
		Code:             l.Code,
		URL:              l.URL,
		Program:          l.Program,
		ClientType:       l.ClientType,
		CreditAvailable:  l.CreditAvailable,
		CreditLineAmount: l.CreditLineAmount,
		Used:             l.Used(),
		Expired:          l.Expired(now),
		UsedByProspectID: l.UsedByProspectID,
		UsedAt:           l.UsedAt,
		CreatedAt:        l.CreatedAt,
		ExpiresAt:        l.ExpiresAt,
	}
}

func shareLinks(s service.ShareLinks) dto.ShareLinksResponse {
	return dto.ShareLinksResponse{WhatsApp: s.WhatsApp, SMS: s.SMS}
}
