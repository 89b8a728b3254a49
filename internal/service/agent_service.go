package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/events"
	"github.com/olimpo/referrals/internal/repository"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

// AgentService simulates admin writes to the agent roster.
type AgentService struct {
	agents     repository.AgentRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	delay      time.Duration
	now        func() time.Time
	newID      func() string
}

// AgentDependencies bundles collaborators for the agent service.
type AgentDependencies struct {
	Agents     repository.AgentRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
	NewID      func() string
}

// SaveAgentInput carries the editable agent fields.
type SaveAgentInput struct {
	Name                string             `validate:"required"`
	Email               string             `validate:"required,email"`
	Phone               string
	Status              domain.AgentStatus `validate:"omitempty,oneof=active inactive"`
	CanReferVIP         bool
	CanReferStandard    bool
	CanGrantCredit      bool
	MaxCreditLineAmount decimal.Decimal
}

// NewAgentService constructs the service.
func NewAgentService(cfg config.SimulationConfig, deps AgentDependencies) *AgentService {
	s := &AgentService{
		agents:     deps.Agents,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		delay:      cfg.MutationDelay(),
		now:        deps.Now,
		newID:      deps.NewID,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// CreateAgent returns a new active agent draft.
func (s *AgentService) CreateAgent(ctx context.Context, input SaveAgentInput) (*domain.Agent, error) {
	input, err := s.prepare(input, "")
	if err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	agent := buildAgent(s.newID(), now, input)
	s.publish(ctx, agent, true, now)
	return &agent, nil
}

// UpdateAgent returns the agent with input applied. ID and CreatedAt are kept.
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, input SaveAgentInput) (*domain.Agent, error) {
	existing, ok := s.agents.GetAgentByID(agentID)
	if !ok {
		return nil, apperrors.NewNotFound("agent", map[string]any{"id": agentID})
	}
	if input.Status == "" {
		input.Status = existing.Status
	}
	input, err := s.prepare(input, agentID)
	if err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	agent := buildAgent(existing.ID, existing.CreatedAt, input)
	s.publish(ctx, agent, false, s.now().UTC())
	return &agent, nil
}

func (s *AgentService) prepare(input SaveAgentInput, selfID string) (SaveAgentInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Status == "" {
		input.Status = domain.AgentStatusActive
	}
	if err := validateInput(input); err != nil {
		return input, err
	}
	if input.MaxCreditLineAmount.IsNegative() {
		return input, apperrors.NewValidationError("max credit line amount must not be negative", map[string]any{"maxcreditlineamount": "gte"})
	}
	if !input.CanGrantCredit {
		input.MaxCreditLineAmount = decimal.Zero
	}
	for _, other := range s.agents.ListAgents() {
		if other.ID != selfID && strings.EqualFold(other.Email, input.Email) {
			return input, apperrors.NewConflict("email already assigned to another agent", map[string]any{"agent_id": other.ID})
		}
	}
	return input, nil
}

func (s *AgentService) publish(ctx context.Context, agent domain.Agent, created bool, at time.Time) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAgentSaved,
		AgentID:   agent.ID,
		Timestamp: at,
		Payload: events.AgentSavedPayload{
			Created:       created,
			Name:          agent.Name,
			Email:         agent.Email,
			Status:        agent.Status,
			MaxCreditLine: agent.Permissions.MaxCreditLineAmount,
		},
	})
	if err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(events.EventAgentSaved)), zap.Error(err))
	}
}

func buildAgent(id string, createdAt time.Time, input SaveAgentInput) domain.Agent {
	return domain.Agent{
		ID:     id,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Status: input.Status,
		Permissions: domain.AgentPermissions{
			CanReferVIP:         input.CanReferVIP,
			CanReferStandard:    input.CanReferStandard,
			CanGrantCredit:      input.CanGrantCredit,
			MaxCreditLineAmount: input.MaxCreditLineAmount,
		},
		CreatedAt: createdAt,
	}
}
