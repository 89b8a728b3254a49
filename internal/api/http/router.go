package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/api/http/handlers"
	"github.com/olimpo/referrals/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Admin  *handlers.AdminHandler
	Portal *handlers.PortalHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	admin := app.Group("/admin")
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/agents", cfg.Admin.ListAgents)
	admin.Post("/agents", cfg.Admin.CreateAgent)
	admin.Get("/agents/:id", cfg.Admin.GetAgent)
	admin.Put("/agents/:id", cfg.Admin.UpdateAgent)
	admin.Get("/referrals", cfg.Admin.ListReferrals)
	admin.Get("/referrals/:id", cfg.Admin.GetReferral)
	admin.Get("/commissions", cfg.Admin.ListCommissions)

	portal := app.Group("/portal/agents/:agentID")
	portal.Get("/panel", cfg.Portal.Panel)
	portal.Get("/referrals", cfg.Portal.ListReferrals)
	portal.Get("/referrals/:id", cfg.Portal.GetReferral)
	portal.Post("/prospects", cfg.Portal.RegisterProspect)
	portal.Get("/invite-links", cfg.Portal.ListInviteLinks)
	portal.Post("/invite-links", cfg.Portal.GenerateInviteLink)
}

// NewApp builds a fiber app with middlewares and routes registered.
func NewApp(name string, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, timeout)
	RegisterRoutes(app, routes)
	return app
}
