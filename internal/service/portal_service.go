package service

import (
	"context"
	"math/rand/v2"
	"net/url"
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

const (
	inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	inviteCodeLength   = 8

	prospectShareMessage = "Te invito a unirte al programa:"
	inviteShareMessage   = "Te invito a unirte a Olimpo:"
)

// PortalService simulates the agent portal writes. Nothing it produces is
// stored; callers get a draft back.
type PortalService struct {
	agents     repository.AgentRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.SimulationConfig
	now        func() time.Time
	newID      func() string
	newCode    func() string
}

// PortalDependencies bundles collaborators for the portal service.
type PortalDependencies struct {
	Agents     repository.AgentRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
	NewID      func() string
	NewCode    func() string
}

// RegisterProspectInput is an agent's direct referral.
type RegisterProspectInput struct {
	Name             string            `validate:"required"`
	Phone            string            `validate:"required_without=Email"`
	Email            string            `validate:"omitempty,email"`
	ClientType       domain.ClientType `validate:"required,oneof=vip standard"`
	Program          domain.Program    `validate:"required,oneof=empresa_eb1 empresa_eb2"`
	CreditAvailable  bool
	CreditLineAmount decimal.Decimal
}

// InviteLinkInput configures a generated invite link.
type InviteLinkInput struct {
	ClientType       domain.ClientType `validate:"required,oneof=vip standard"`
	Program          domain.Program    `validate:"required,oneof=empresa_eb1 empresa_eb2"`
	CreditAvailable  bool
	CreditLineAmount decimal.Decimal
}

// ShareLinks are prefilled messaging URLs for an invite URL.
type ShareLinks struct {
	WhatsApp string `json:"whatsapp"`
	SMS      string `json:"sms"`
}

// ProspectDraft is the result of a simulated registration.
type ProspectDraft struct {
	Prospect  domain.Prospect
	InviteURL string
	Share     ShareLinks
}

// InviteLinkDraft is the result of a simulated invite link generation.
type InviteLinkDraft struct {
	Link  domain.InviteLink
	Share ShareLinks
}

// NewPortalService constructs the service.
func NewPortalService(cfg config.SimulationConfig, deps PortalDependencies) *PortalService {
	s := &PortalService{
		agents:     deps.Agents,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		cfg:        cfg,
		now:        deps.Now,
		newID:      deps.NewID,
		newCode:    deps.NewCode,
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
	if s.newCode == nil {
		s.newCode = GenerateInviteCode
	}
	if strings.TrimSpace(s.cfg.InviteBaseURL) == "" {
		s.cfg.InviteBaseURL = "https://mexaswallet.app/join/"
	}
	return s
}

// RegisterProspect validates a direct referral against the agent's
// permissions and returns an invited prospect draft.
func (s *PortalService) RegisterProspect(ctx context.Context, agentID string, input RegisterProspectInput) (*ProspectDraft, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	agent, err := s.referringAgent(agentID)
	if err != nil {
		return nil, err
	}
	credit, err := checkReferral(agent, input.ClientType, input.CreditAvailable, input.CreditLineAmount)
	if err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, s.cfg.MutationDelay()); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	inviteURL := s.cfg.InviteBaseURL + s.newCode()
	prospect := domain.Prospect{
		ID:               s.newID(),
		Name:             input.Name,
		Phone:            input.Phone,
		Email:            input.Email,
		ClientType:       input.ClientType,
		CreditAvailable:  input.CreditAvailable,
		CreditLineAmount: credit,
		Program:          input.Program,
		ReferredByAgent:  agent.ID,
		ReferralMethod:   domain.ReferralMethodDirect,
		Status:           domain.ReferralInvited,
		StatusHistory:    []domain.StatusHistoryEntry{{Status: domain.ReferralInvited, Timestamp: now}},
		CreatedAt:        now,
	}

	s.publish(ctx, events.EventProspectRegistered, agent.ID, now, events.ProspectRegisteredPayload{
		ProspectID: prospect.ID,
		Name:       prospect.Name,
		ClientType: prospect.ClientType,
		Program:    prospect.Program,
		InviteURL:  inviteURL,
	})

	return &ProspectDraft{
		Prospect:  prospect,
		InviteURL: inviteURL,
		Share:     shareLinks(inviteURL, prospectShareMessage),
	}, nil
}

// GenerateInviteLink returns a fresh, unused invite link draft.
func (s *PortalService) GenerateInviteLink(ctx context.Context, agentID string, input InviteLinkInput) (*InviteLinkDraft, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	agent, err := s.referringAgent(agentID)
	if err != nil {
		return nil, err
	}
	credit, err := checkReferral(agent, input.ClientType, input.CreditAvailable, input.CreditLineAmount)
	if err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, s.cfg.InviteLinkDelay()); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	code := s.newCode()
	link := domain.InviteLink{
		ID:               s.newID(),
		AgentID:          agent.ID,
		Code:             code,
		URL:              s.cfg.InviteBaseURL + code,
		Program:          input.Program,
		ClientType:       input.ClientType,
		CreditAvailable:  input.CreditAvailable,
		CreditLineAmount: credit,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.cfg.InviteTTL()),
	}

	s.publish(ctx, events.EventInviteLinkGenerated, agent.ID, now, events.InviteLinkGeneratedPayload{
		LinkID:     link.ID,
		Code:       link.Code,
		URL:        link.URL,
		ClientType: link.ClientType,
		ExpiresAt:  link.ExpiresAt,
	})

	return &InviteLinkDraft{Link: link, Share: shareLinks(link.URL, inviteShareMessage)}, nil
}

func (s *PortalService) referringAgent(agentID string) (domain.Agent, error) {
	agent, ok := s.agents.GetAgentByID(agentID)
	if !ok {
		return domain.Agent{}, apperrors.NewNotFound("agent", map[string]any{"id": agentID})
	}
	if agent.Status != domain.AgentStatusActive {
		return domain.Agent{}, apperrors.NewForbidden("agent is inactive")
	}
	return agent, nil
}

func (s *PortalService) publish(ctx context.Context, eventType events.EventType, agentID string, at time.Time, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AgentID:   agentID,
		Timestamp: at,
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

// checkReferral applies the agent's permissions and returns the credit line
// amount to record: zero unless credit is offered.
func checkReferral(agent domain.Agent, clientType domain.ClientType, creditAvailable bool, amount decimal.Decimal) (decimal.Decimal, error) {
	perms := agent.Permissions
	if !perms.AllowsClientType(clientType) {
		return decimal.Zero, apperrors.NewForbidden("agent cannot refer " + string(clientType) + " clients")
	}
	if !creditAvailable {
		return decimal.Zero, nil
	}
	if !perms.CanGrantCredit {
		return decimal.Zero, apperrors.NewForbidden("agent cannot grant credit")
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError("credit line amount must be positive", map[string]any{"creditlineamount": "gt"})
	}
	if amount.GreaterThan(perms.MaxCreditLineAmount) {
		return decimal.Zero, apperrors.NewValidationError("credit line amount exceeds agent maximum", map[string]any{
			"creditlineamount": "lte",
			"max":              perms.MaxCreditLineAmount.String(),
		})
	}
	return amount, nil
}

// GenerateInviteCode returns an 8 character code over an alphabet without
// look-alike characters.
func GenerateInviteCode() string {
	var b strings.Builder
	b.Grow(inviteCodeLength)
	for i := 0; i < inviteCodeLength; i++ {
		b.WriteByte(inviteCodeAlphabet[rand.IntN(len(inviteCodeAlphabet))])
	}
	return b.String()
}

func shareLinks(inviteURL, message string) ShareLinks {
	text := encodeComponent(message + " " + inviteURL)
	return ShareLinks{
		WhatsApp: "https://wa.me/?text=" + text,
		SMS:      "sms:?body=" + text,
	}
}

// encodeComponent percent-encodes s with %20 for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
