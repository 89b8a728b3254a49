package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/repository"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

// DirectorySource is the lookup surface the directory reads from.
type DirectorySource interface {
	repository.AgentRepository
	repository.ProspectRepository
	repository.TransactionRepository
	repository.CommissionRepository
	repository.InviteLinkRepository
}

// DirectoryService answers lookups and listings over the snapshot, turning
// absent entities into NOT_FOUND errors.
type DirectoryService struct {
	source DirectorySource
}

// AgentOverview pairs an agent with its rollup.
type AgentOverview struct {
	Agent domain.Agent
	Stats AgentStats
}

// AgentProfile is the admin agent detail view.
type AgentProfile struct {
	Agent       domain.Agent
	Stats       AgentStats
	Prospects   []domain.Prospect
	Commissions []domain.Commission
}

// ReferralDetail is a prospect with its owning agent and money movements.
type ReferralDetail struct {
	Prospect     domain.Prospect
	Agent        domain.Agent
	Transactions []domain.Transaction
	Commissions  []domain.Commission
}

// CommissionReport is a filtered ledger slice with its totals.
type CommissionReport struct {
	Items     []domain.Commission
	Generated decimal.Decimal
	Paid      decimal.Decimal
	Pending   decimal.Decimal
}

// NewDirectoryService constructs the service.
func NewDirectoryService(source DirectorySource) *DirectoryService {
	return &DirectoryService{source: source}
}

// Agent returns one agent.
func (s *DirectoryService) Agent(id string) (domain.Agent, error) {
	agent, ok := s.source.GetAgentByID(id)
	if !ok {
		return domain.Agent{}, apperrors.NewNotFound("agent", map[string]any{"id": id})
	}
	return agent, nil
}

// ListAgents returns every agent with its stats, in roster order.
func (s *DirectoryService) ListAgents() []AgentOverview {
	agents := s.source.ListAgents()
	result := make([]AgentOverview, 0, len(agents))
	for _, agent := range agents {
		result = append(result, AgentOverview{Agent: agent, Stats: s.agentStats(agent.ID)})
	}
	return result
}

// AgentProfile returns the agent with stats, referrals and commissions, the
// last two newest first.
func (s *DirectoryService) AgentProfile(id string) (*AgentProfile, error) {
	agent, err := s.Agent(id)
	if err != nil {
		return nil, err
	}
	agentID := agent.ID
	return &AgentProfile{
		Agent:       agent,
		Stats:       s.agentStats(agentID),
		Prospects:   s.source.FindProspects(repository.ProspectFilter{AgentID: &agentID}),
		Commissions: s.source.FindCommissions(repository.CommissionFilter{AgentID: &agentID}),
	}, nil
}

// ListReferrals returns prospects matching filter, newest first.
func (s *DirectoryService) ListReferrals(filter repository.ProspectFilter) []domain.Prospect {
	return s.source.FindProspects(filter)
}

// Referral returns one prospect with its owner and money movements.
func (s *DirectoryService) Referral(id string) (*ReferralDetail, error) {
	prospect, ok := s.source.GetProspectByID(id)
	if !ok {
		return nil, apperrors.NewNotFound("prospect", map[string]any{"id": id})
	}
	return s.referralDetail(prospect)
}

// AgentReferrals returns an agent's prospects, newest first.
func (s *DirectoryService) AgentReferrals(agentID string, filter repository.ProspectFilter) ([]domain.Prospect, error) {
	if _, err := s.Agent(agentID); err != nil {
		return nil, err
	}
	filter.AgentID = &agentID
	return s.source.FindProspects(filter), nil
}

// ProspectForAgent returns a prospect only when agentID referred it.
func (s *DirectoryService) ProspectForAgent(agentID, prospectID string) (*ReferralDetail, error) {
	if _, err := s.Agent(agentID); err != nil {
		return nil, err
	}
	prospect, ok := s.source.GetProspectByID(prospectID)
	if !ok || prospect.ReferredByAgent != agentID {
		return nil, apperrors.NewNotFound("prospect", map[string]any{"id": prospectID})
	}
	return s.referralDetail(prospect)
}

// ListCommissions returns the filtered ledger and its totals.
func (s *DirectoryService) ListCommissions(filter repository.CommissionFilter) CommissionReport {
	items := s.source.FindCommissions(filter)
	generated, paid, pending := sumCommissions(items)
	return CommissionReport{
		Items:     items,
		Generated: generated.Round(2),
		Paid:      paid.Round(2),
		Pending:   pending.Round(2),
	}
}

// InviteLinksForAgent returns an agent's invite links, newest first.
func (s *DirectoryService) InviteLinksForAgent(agentID string) ([]domain.InviteLink, error) {
	if _, err := s.Agent(agentID); err != nil {
		return nil, err
	}
	links := s.source.InviteLinksByAgent(agentID)
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

func (s *DirectoryService) referralDetail(prospect domain.Prospect) (*ReferralDetail, error) {
	agent, err := s.Agent(prospect.ReferredByAgent)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	commissions := keep(s.source.CommissionsByAgent(agent.ID), func(c domain.Commission) bool {
		return c.ProspectID == prospect.ID
	})
	return &ReferralDetail{
		Prospect:     prospect,
		Agent:        agent,
		Transactions: s.source.TransactionsByProspect(prospect.ID),
		Commissions:  commissions,
	}, nil
}

func (s *DirectoryService) agentStats(agentID string) AgentStats {
	return ComputeAgentStats(
		s.source.ProspectsByAgent(agentID),
		s.source.TransactionsByAgent(agentID),
		s.source.CommissionsByAgent(agentID),
	)
}
