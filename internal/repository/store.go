package repository

import (
	"fmt"

	"github.com/olimpo/referrals/internal/domain"
)

// Dataset is the raw material a Store is built from.
type Dataset struct {
	Agents       []domain.Agent
	Prospects    []domain.Prospect
	Transactions []domain.Transaction
	InviteLinks  []domain.InviteLink
}

// CommissionDeriver synthesizes the commission ledger from transactions.
type CommissionDeriver interface {
	Derive(transactions []domain.Transaction) []domain.Commission
}

// Store is an immutable snapshot of every referral-program collection.
// It is safe for concurrent readers; accessors hand out copies.
type Store struct {
	agents       []domain.Agent
	prospects    []domain.Prospect
	transactions []domain.Transaction
	commissions  []domain.Commission
	inviteLinks  []domain.InviteLink

	agentIdx    map[string]int
	prospectIdx map[string]int
}

// NewStore validates data, derives commissions once and freezes the result.
func NewStore(data Dataset, deriver CommissionDeriver) (*Store, error) {
	s := &Store{
		agents:       append([]domain.Agent(nil), data.Agents...),
		prospects:    make([]domain.Prospect, 0, len(data.Prospects)),
		transactions: append([]domain.Transaction(nil), data.Transactions...),
		inviteLinks:  append([]domain.InviteLink(nil), data.InviteLinks...),
		agentIdx:     make(map[string]int, len(data.Agents)),
		prospectIdx:  make(map[string]int, len(data.Prospects)),
	}

	for i, agent := range s.agents {
		if _, dup := s.agentIdx[agent.ID]; dup {
			return nil, fmt.Errorf("duplicate agent id %s", agent.ID)
		}
		if agent.Permissions.MaxCreditLineAmount.IsNegative() {
			return nil, fmt.Errorf("agent %s: negative max credit line", agent.ID)
		}
		s.agentIdx[agent.ID] = i
	}

	for _, p := range data.Prospects {
		if _, dup := s.prospectIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate prospect id %s", p.ID)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.agentIdx[p.ReferredByAgent]; !ok {
			return nil, fmt.Errorf("prospect %s: unknown agent %s", p.ID, p.ReferredByAgent)
		}
		s.prospectIdx[p.ID] = len(s.prospects)
		s.prospects = append(s.prospects, cloneProspect(p))
	}

	for _, txn := range s.transactions {
		idx, ok := s.prospectIdx[txn.ProspectID]
		if !ok {
			return nil, fmt.Errorf("transaction %s: unknown prospect %s", txn.ID, txn.ProspectID)
		}
		if owner := s.prospects[idx].ReferredByAgent; owner != txn.AgentID {
			return nil, fmt.Errorf("transaction %s: agent %s does not own prospect %s", txn.ID, txn.AgentID, txn.ProspectID)
		}
		if !txn.Amount.IsPositive() {
			return nil, fmt.Errorf("transaction %s: amount must be positive", txn.ID)
		}
	}

	for _, l := range s.inviteLinks {
		if _, ok := s.agentIdx[l.AgentID]; !ok {
			return nil, fmt.Errorf("invite link %s: unknown agent %s", l.ID, l.AgentID)
		}
	}

	if deriver != nil {
		s.commissions = deriver.Derive(s.ListTransactions())
	}
	return s, nil
}

// GetAgentByID returns the agent or false when absent.
func (s *Store) GetAgentByID(id string) (domain.Agent, bool) {
	idx, ok := s.agentIdx[id]
	if !ok {
		return domain.Agent{}, false
	}
	return s.agents[idx], true
}

// ListAgents returns every agent in seed order.
func (s *Store) ListAgents() []domain.Agent {
	return append([]domain.Agent(nil), s.agents...)
}

// GetProspectByID returns the prospect or false when absent.
func (s *Store) GetProspectByID(id string) (domain.Prospect, bool) {
	idx, ok := s.prospectIdx[id]
	if !ok {
		return domain.Prospect{}, false
	}
	return cloneProspect(s.prospects[idx]), true
}

// ListProspects returns every prospect in seed order.
func (s *Store) ListProspects() []domain.Prospect {
	return s.filterProspects(func(domain.Prospect) bool { return true })
}

// ProspectsByAgent returns the prospects referred by agentID.
func (s *Store) ProspectsByAgent(agentID string) []domain.Prospect {
	return s.filterProspects(func(p domain.Prospect) bool { return p.ReferredByAgent == agentID })
}

// ListTransactions returns every transaction in seed order.
func (s *Store) ListTransactions() []domain.Transaction {
	return append([]domain.Transaction(nil), s.transactions...)
}

// TransactionsByAgent returns the transactions attributed to agentID.
func (s *Store) TransactionsByAgent(agentID string) []domain.Transaction {
	return filter(s.transactions, func(t domain.Transaction) bool { return t.AgentID == agentID })
}

// TransactionsByProspect returns the transactions of prospectID.
func (s *Store) TransactionsByProspect(prospectID string) []domain.Transaction {
	return filter(s.transactions, func(t domain.Transaction) bool { return t.ProspectID == prospectID })
}

// ListCommissions returns the derived commission ledger.
func (s *Store) ListCommissions() []domain.Commission {
	return cloneCommissions(s.commissions, func(domain.Commission) bool { return true })
}

// CommissionsByAgent returns the commissions earned by agentID.
func (s *Store) CommissionsByAgent(agentID string) []domain.Commission {
	return cloneCommissions(s.commissions, func(c domain.Commission) bool { return c.AgentID == agentID })
}

// ListInviteLinks returns every invite link in seed order.
func (s *Store) ListInviteLinks() []domain.InviteLink {
	return cloneInviteLinks(s.inviteLinks, func(domain.InviteLink) bool { return true })
}

// InviteLinksByAgent returns the invite links generated by agentID.
func (s *Store) InviteLinksByAgent(agentID string) []domain.InviteLink {
	return cloneInviteLinks(s.inviteLinks, func(l domain.InviteLink) bool { return l.AgentID == agentID })
}

func (s *Store) filterProspects(keep func(domain.Prospect) bool) []domain.Prospect {
	result := make([]domain.Prospect, 0)
	for _, p := range s.prospects {
		if keep(p) {
			result = append(result, cloneProspect(p))
		}
	}
	return result
}

func filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func cloneProspect(p domain.Prospect) domain.Prospect {
	p.StatusHistory = append([]domain.StatusHistoryEntry(nil), p.StatusHistory...)
	if p.InviteLinkID != nil {
		id := *p.InviteLinkID
		p.InviteLinkID = &id
	}
	return p
}

func cloneCommissions(items []domain.Commission, keep func(domain.Commission) bool) []domain.Commission {
	result := make([]domain.Commission, 0)
	for _, c := range items {
		if !keep(c) {
			continue
		}
		if c.PaidAt != nil {
			paidAt := *c.PaidAt
			c.PaidAt = &paidAt
		}
		result = append(result, c)
	}
	return result
}

func cloneInviteLinks(items []domain.InviteLink, keep func(domain.InviteLink) bool) []domain.InviteLink {
	result := make([]domain.InviteLink, 0)
	for _, l := range items {
		if !keep(l) {
			continue
		}
		if l.UsedByProspectID != nil {
			id := *l.UsedByProspectID
			l.UsedByProspectID = &id
		}
		if l.UsedAt != nil {
			usedAt := *l.UsedAt
			l.UsedAt = &usedAt
		}
		result = append(result, l)
	}
	return result
}
