package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/olimpo/referrals/internal/observability"
	"github.com/olimpo/referrals/internal/persistence"
)

const readyTimeout = 2 * time.Second

// Probe checks one dependency. A nil Check means the dependency is disabled
// and never blocks readiness.
type Probe struct {
	Name  string
	Check func(context.Context) error
}

// RedisProbe pings the stats cache. A nil client yields a disabled probe.
func RedisProbe(r *persistence.Redis) Probe {
	if r == nil {
		return Probe{Name: "redis"}
	}
	return Probe{Name: "redis", Check: r.Ping}
}

// HealthHandler serves liveness, readiness and the request counters.
type HealthHandler struct {
	serviceName string
	version     string
	startedAt   time.Time
	metrics     *observability.Metrics
	probes      []Probe
}

func NewHealthHandler(serviceName, version string, metrics *observability.Metrics, probes ...Probe) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		startedAt:   time.Now(),
		metrics:     metrics,
		probes:      probes,
	}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "alive",
		"service":        h.serviceName,
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

// Ready GET /health/ready. The in-memory store is always ready; only the
// configured probes can fail the check.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	deps := fiber.Map{"store": "ok"}
	ready := true
	for _, p := range h.probes {
		switch {
		case p.Check == nil:
			deps[p.Name] = "disabled"
		default:
			if err := p.Check(ctx); err != nil {
				deps[p.Name] = err.Error()
				ready = false
				continue
			}
			deps[p.Name] = "ok"
		}
	}

	if !ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "one or more dependencies unavailable",
				"details": deps,
			},
		})
	}
	return c.JSON(fiber.Map{"status": "ready", "dependencies": deps})
}

// Metrics GET /metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.metrics.Snapshot()})
}
