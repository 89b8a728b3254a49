package repository

import (
	"sort"
	"time"

	"github.com/olimpo/referrals/internal/domain"
)

// ProspectFilter captures admin referral search parameters.
type ProspectFilter struct {
	AgentID     *string
	Statuses    []domain.ReferralStatus
	ClientType  *domain.ClientType
	Program     *domain.Program
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CommissionFilter captures commission ledger search parameters.
type CommissionFilter struct {
	AgentID     *string
	Status      *domain.CommissionStatus
	CreatedFrom *time.Time
}

// AgentRepository exposes agent lookups.
type AgentRepository interface {
	GetAgentByID(id string) (domain.Agent, bool)
	ListAgents() []domain.Agent
}

// ProspectRepository exposes prospect lookups.
type ProspectRepository interface {
	GetProspectByID(id string) (domain.Prospect, bool)
	ListProspects() []domain.Prospect
	ProspectsByAgent(agentID string) []domain.Prospect
	FindProspects(filter ProspectFilter) []domain.Prospect
}

// TransactionRepository exposes transaction lookups.
type TransactionRepository interface {
	ListTransactions() []domain.Transaction
	TransactionsByAgent(agentID string) []domain.Transaction
	TransactionsByProspect(prospectID string) []domain.Transaction
}

// CommissionRepository exposes the derived commission ledger.
type CommissionRepository interface {
	ListCommissions() []domain.Commission
	CommissionsByAgent(agentID string) []domain.Commission
	FindCommissions(filter CommissionFilter) []domain.Commission
}

// InviteLinkRepository exposes invite link lookups.
type InviteLinkRepository interface {
	ListInviteLinks() []domain.InviteLink
	InviteLinksByAgent(agentID string) []domain.InviteLink
}

// FindProspects returns prospects matching filter, newest first.
func (s *Store) FindProspects(f ProspectFilter) []domain.Prospect {
	statuses := make(map[domain.ReferralStatus]struct{}, len(f.Statuses))
	for _, status := range f.Statuses {
		statuses[status] = struct{}{}
	}

	result := s.filterProspects(func(p domain.Prospect) bool {
		if f.AgentID != nil && p.ReferredByAgent != *f.AgentID {
			return false
		}
		if len(statuses) > 0 {
			if _, ok := statuses[p.Status]; !ok {
				return false
			}
		}
		if f.ClientType != nil && p.ClientType != *f.ClientType {
			return false
		}
		if f.Program != nil && p.Program != *f.Program {
			return false
		}
		if f.CreatedFrom != nil && p.CreatedAt.Before(*f.CreatedFrom) {
			return false
		}
		if f.CreatedTo != nil && p.CreatedAt.After(*f.CreatedTo) {
			return false
		}
		return true
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// FindCommissions returns commissions matching filter, newest first.
func (s *Store) FindCommissions(f CommissionFilter) []domain.Commission {
	result := cloneCommissions(s.commissions, func(c domain.Commission) bool {
		if f.AgentID != nil && c.AgentID != *f.AgentID {
			return false
		}
		if f.Status != nil && c.Status != *f.Status {
			return false
		}
		if f.CreatedFrom != nil && c.CreatedAt.Before(*f.CreatedFrom) {
			return false
		}
		return true
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
