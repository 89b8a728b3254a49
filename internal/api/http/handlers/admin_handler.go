package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olimpo/referrals/internal/api/dto"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/service"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	stats     *service.StatsService
	directory *service.DirectoryService
	agents    *service.AgentService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(stats *service.StatsService, directory *service.DirectoryService, agents *service.AgentService) *AdminHandler {
	return &AdminHandler{stats: stats, directory: directory, agents: agents}
}

// Dashboard GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	filter, err := parseDashboardFilter(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.stats.GlobalStats(c.UserContext(), filter)})
}

// ListAgents GET /admin/agents.
func (h *AdminHandler) ListAgents(c *fiber.Ctx) error {
	overviews := h.directory.ListAgents()
	items := make([]dto.AgentListItem, 0, len(overviews))
	for _, o := range overviews {
		items = append(items, dto.AgentListItem{AgentResponse: agentResponse(o.Agent), Stats: o.Stats})
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetAgent GET /admin/agents/:id.
func (h *AdminHandler) GetAgent(c *fiber.Ctx) error {
	profile, err := h.directory.AgentProfile(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AgentDetailResponse{
		Agent:       agentResponse(profile.Agent),
		Stats:       profile.Stats,
		Prospects:   prospectSummaries(profile.Prospects),
		Commissions: commissionResponses(profile.Commissions),
	}})
}

// CreateAgent POST /admin/agents.
func (h *AdminHandler) CreateAgent(c *fiber.Ctx) error {
	var req dto.SaveAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agent, err := h.agents.CreateAgent(c.UserContext(), saveAgentInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": agentResponse(*agent)})
}

// UpdateAgent PUT /admin/agents/:id.
func (h *AdminHandler) UpdateAgent(c *fiber.Ctx) error {
	var req dto.SaveAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agent, err := h.agents.UpdateAgent(c.UserContext(), c.Params("id"), saveAgentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": agentResponse(*agent)})
}

// ListReferrals GET /admin/referrals.
func (h *AdminHandler) ListReferrals(c *fiber.Ctx) error {
	filter, err := parseProspectFilter(c)
	if err != nil {
		return err
	}
	if agentID := queryValue(c, "agent_id"); agentID != "" {
		filter.AgentID = &agentID
	}
	prospects := h.directory.ListReferrals(filter)
	page, pageNum, pageSize := paginate(c, prospects)
	return c.JSON(fiber.Map{
		"data": prospectSummaries(page),
		"meta": dto.PageMeta{Page: pageNum, PageSize: pageSize, Total: len(prospects)},
	})
}

// GetReferral GET /admin/referrals/:id.
func (h *AdminHandler) GetReferral(c *fiber.Ctx) error {
	detail, err := h.directory.Referral(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": referralDetail(detail)})
}

// ListCommissions GET /admin/commissions.
func (h *AdminHandler) ListCommissions(c *fiber.Ctx) error {
	var filter repository.CommissionFilter
	status, err := parseCommissionStatus(c, "status")
	if err != nil {
		return err
	}
	filter.Status = status
	if agentID := queryValue(c, "agent_id"); agentID != "" {
		filter.AgentID = &agentID
	}
	if filter.CreatedFrom, err = parseDate(c, "from", false); err != nil {
		return err
	}

	report := h.directory.ListCommissions(filter)
	page, pageNum, pageSize := paginate(c, report.Items)
	return c.JSON(fiber.Map{
		"data": commissionResponses(page),
		"totals": dto.CommissionTotals{
			Generated: report.Generated,
			Paid:      report.Paid,
			Pending:   report.Pending,
		},
		"meta": dto.PageMeta{Page: pageNum, PageSize: pageSize, Total: len(report.Items)},
	})
}

func parseDashboardFilter(c *fiber.Ctx) (service.DashboardFilter, error) {
	var (
		filter service.DashboardFilter
		err    error
	)
	if filter.DateFrom, err = parseDate(c, "date_from", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDate(c, "date_to", true); err != nil {
		return filter, err
	}
	if filter.ClientType, err = parseClientType(c, "client_type"); err != nil {
		return filter, err
	}
	if filter.Program, err = parseProgram(c, "program"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseProspectFilter(c *fiber.Ctx) (repository.ProspectFilter, error) {
	var (
		filter repository.ProspectFilter
		err    error
	)
	if filter.Statuses, err = parseReferralStatuses(c, "status"); err != nil {
		return filter, err
	}
	if filter.ClientType, err = parseClientType(c, "client_type"); err != nil {
		return filter, err
	}
	if filter.Program, err = parseProgram(c, "program"); err != nil {
		return filter, err
	}
	if filter.CreatedFrom, err = parseDate(c, "date_from", false); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = parseDate(c, "date_to", true); err != nil {
		return filter, err
	}
	return filter, nil
}

func saveAgentInput(req dto.SaveAgentRequest) service.SaveAgentInput {
	return service.SaveAgentInput{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Status:              req.Status,
		CanReferVIP:         req.CanReferVIP,
		CanReferStandard:    req.CanReferStandard,
		CanGrantCredit:      req.CanGrantCredit,
		MaxCreditLineAmount: req.MaxCreditLineAmount,
	}
}
