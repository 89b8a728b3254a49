package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/olimpo/referrals/internal/api/dto"
	"github.com/olimpo/referrals/internal/service"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

// PortalHandler serves the agent portal. The agent is identified by the
// :agentID path segment.
type PortalHandler struct {
	stats     *service.StatsService
	directory *service.DirectoryService
	portal    *service.PortalService
	now       func() time.Time
}

// NewPortalHandler constructs handler.
func NewPortalHandler(stats *service.StatsService, directory *service.DirectoryService, portal *service.PortalService, now func() time.Time) *PortalHandler {
	if now == nil {
		now = time.Now
	}
	return &PortalHandler{stats: stats, directory: directory, portal: portal, now: now}
}

// Panel GET /portal/agents/:agentID/panel.
func (h *PortalHandler) Panel(c *fiber.Ctx) error {
	agent, err := h.directory.Agent(c.Params("agentID"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AgentPanelResponse{
		Agent:   agentResponse(agent),
		Stats:   h.stats.AgentStats(agent.ID),
		Monthly: h.stats.MonthlyMetrics(agent.ID),
	}})
}

// ListReferrals GET /portal/agents/:agentID/referrals.
func (h *PortalHandler) ListReferrals(c *fiber.Ctx) error {
	filter, err := parseProspectFilter(c)
	if err != nil {
		return err
	}
	prospects, err := h.directory.AgentReferrals(c.Params("agentID"), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": prospectSummaries(prospects)})
}

// GetReferral GET /portal/agents/:agentID/referrals/:id.
func (h *PortalHandler) GetReferral(c *fiber.Ctx) error {
	detail, err := h.directory.ProspectForAgent(c.Params("agentID"), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": referralDetail(detail)})
}

// RegisterProspect POST /portal/agents/:agentID/prospects.
func (h *PortalHandler) RegisterProspect(c *fiber.Ctx) error {
	var req dto.RegisterProspectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	draft, err := h.portal.RegisterProspect(c.UserContext(), c.Params("agentID"), service.RegisterProspectInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		ClientType:       req.ClientType,
		Program:          req.Program,
		CreditAvailable:  req.CreditAvailable,
		CreditLineAmount: req.CreditLineAmount,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ProspectDraftResponse{
		Prospect:  prospectDetail(draft.Prospect),
		InviteURL: draft.InviteURL,
		Share:     shareLinks(draft.Share),
	}})
}

// ListInviteLinks GET /portal/agents/:agentID/invite-links.
func (h *PortalHandler) ListInviteLinks(c *fiber.Ctx) error {
	links, err := h.directory.InviteLinksForAgent(c.Params("agentID"))
	if err != nil {
		return err
	}
	now := h.now()
	items := make([]dto.InviteLinkResponse, 0, len(links))
	for _, l := range links {
		items = append(items, inviteLinkResponse(l, now))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GenerateInviteLink POST /portal/agents/:agentID/invite-links.
func (h *PortalHandler) GenerateInviteLink(c *fiber.Ctx) error {
	var req dto.InviteLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	draft, err := h.portal.GenerateInviteLink(c.UserContext(), c.Params("agentID"), service.InviteLinkInput{
		ClientType:       req.ClientType,
		Program:          req.Program,
		CreditAvailable:  req.CreditAvailable,
		CreditLineAmount: req.CreditLineAmount,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.InviteLinkDraftResponse{
		Link:  inviteLinkResponse(draft.Link, h.now()),
		Share: shareLinks(draft.Share),
	}})
}
