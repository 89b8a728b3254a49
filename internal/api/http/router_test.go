package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/api/http/handlers"
	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/events"
	"github.com/olimpo/referrals/internal/observability"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/seed"
	"github.com/olimpo/referrals/internal/service"
)

var (
	boundary   = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	firstMonth = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	frozenNow  = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := repository.NewStore(seed.Dataset(), service.NewCommissionPolicy(boundary))
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	dispatcher := events.NewBus()
	service.NewNotificationService(dispatcher, logger, config.NotificationConfig{}).RegisterHandlers()
	sim := config.SimulationConfig{InviteBaseURL: "https://mexaswallet.app/join/", InviteTTLDays: 30}
	now := func() time.Time { return frozenNow }

	stats := service.NewStatsService(service.StatsDependencies{
		Source:  store,
		Windows: service.CalendarWindows(firstMonth, 5),
		Logger:  logger,
	})
	directory := service.NewDirectoryService(store)
	agents := service.NewAgentService(sim, service.AgentDependencies{Agents: store, Dispatcher: dispatcher, Logger: logger, Now: now})
	portal := service.NewPortalService(sim, service.PortalDependencies{Agents: store, Dispatcher: dispatcher, Logger: logger, Now: now})

	return NewApp("referrals-test", logger, metrics, 5*time.Second, RouteConfig{
		Health: handlers.NewHealthHandler("referrals-test", "test", metrics, handlers.RedisProbe(nil)),
		Admin:  handlers.NewAdminHandler(stats, directory, agents),
		Portal: handlers.NewPortalHandler(stats, directory, portal, now),
	})
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return d
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)
	if status, _ := call(t, app, fiber.MethodGet, "/health/live", nil); status != fiber.StatusOK {
		t.Fatalf("live returned %d", status)
	}
	status, body := call(t, app, fiber.MethodGet, "/health/ready", nil)
	if status != fiber.StatusOK {
		t.Fatalf("ready returned %d: %v", status, body)
	}
	deps := body["dependencies"].(map[string]any)
	if deps["redis"] != "disabled" {
		t.Fatalf("expected redis disabled, got %v", deps["redis"])
	}
}

func TestDashboardFilters(t *testing.T) {
	app := newTestApp(t)

	_, all := call(t, app, fiber.MethodGet, "/admin/dashboard", nil)
	_, allSentinel := call(t, app, fiber.MethodGet, "/admin/dashboard?client_type=all&program=all", nil)
	if data(t, all)["total_referrals"] != float64(35) {
		t.Fatalf("expected 35 referrals, got %v", data(t, all)["total_referrals"])
	}
	if data(t, allSentinel)["total_referrals"] != data(t, all)["total_referrals"] {
		t.Fatalf("\"all\" must behave like no filter")
	}

	_, vip := call(t, app, fiber.MethodGet, "/admin/dashboard?client_type=vip", nil)
	vipBreakdown := data(t, vip)["client_type_breakdown"].(map[string]any)
	if vipBreakdown["standard"] != float64(0) || vipBreakdown["vip"] != data(t, vip)["total_referrals"] {
		t.Fatalf("unexpected vip breakdown %v", vipBreakdown)
	}

	_, ranged := call(t, app, fiber.MethodGet, "/admin/dashboard?date_from=2025-11-01&date_to=2025-11-30", nil)
	if got := data(t, ranged)["total_referrals"].(float64); got <= 0 || got >= 35 {
		t.Fatalf("unexpected November referrals %v", got)
	}
}

func TestDashboardRejectsBadQuery(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{
		"/admin/dashboard?client_type=gold",
		"/admin/dashboard?program=eb3",
		"/admin/dashboard?date_from=yesterday",
	} {
		status, body := call(t, app, fiber.MethodGet, path, nil)
		if status != fiber.StatusBadRequest || errorCode(body) != "VALIDATION_FAILED" {
			t.Fatalf("%s: expected 400 VALIDATION_FAILED, got %d %v", path, status, body)
		}
	}
}

func TestAgentPanel(t *testing.T) {
	app := newTestApp(t)
	status, body := call(t, app, fiber.MethodGet, "/portal/agents/agent-001/panel", nil)
	if status != fiber.StatusOK {
		t.Fatalf("panel returned %d", status)
	}
	panel := data(t, body)
	stats := panel["stats"].(map[string]any)
	if stats["total_referrals"] != float64(6) || stats["active"] != float64(4) || stats["registered"] != float64(1) || stats["invited"] != float64(1) {
		t.Fatalf("unexpected stats %v", stats)
	}
	monthly := panel["monthly"].([]any)
	labels := []string{"Oct", "Nov", "Dic", "Ene", "Feb"}
	if len(monthly) != len(labels) {
		t.Fatalf("expected %d months got %d", len(labels), len(monthly))
	}
	for i, m := range monthly {
		if m.(map[string]any)["label"] != labels[i] {
			t.Fatalf("month %d labelled %v", i, m.(map[string]any)["label"])
		}
	}
}

func TestNotFoundResponses(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{
		"/admin/agents/agent-404",
		"/admin/referrals/prospect-999",
		"/portal/agents/agent-404/panel",
		"/portal/agents/agent-002/referrals/prospect-001",
		"/nowhere",
	} {
		status, body := call(t, app, fiber.MethodGet, path, nil)
		if status != fiber.StatusNotFound || errorCode(body) != "NOT_FOUND" {
			t.Fatalf("%s: expected 404 NOT_FOUND, got %d %v", path, status, body)
		}
	}
}

func TestAdminReferralsPagination(t *testing.T) {
	app := newTestApp(t)
	_, body := call(t, app, fiber.MethodGet, "/admin/referrals?page=2&page_size=10", nil)
	items := body["data"].([]any)
	meta := body["meta"].(map[string]any)
	if len(items) != 10 || meta["total"] != float64(35) || meta["page"] != float64(2) {
		t.Fatalf("unexpected page %d items, meta %v", len(items), meta)
	}
}

func TestPaginationPastTheEnd(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{
		"/admin/referrals?page=9223372036854775807",
		"/admin/referrals?page=4&page_size=20",
		"/admin/commissions?page=9223372036854775807&page_size=100",
	} {
		status, body := call(t, app, fiber.MethodGet, path, nil)
		if status != fiber.StatusOK {
			t.Fatalf("%s: expected 200 got %d %v", path, status, body)
		}
		if items := body["data"].([]any); len(items) != 0 {
			t.Fatalf("%s: expected an empty page, got %d items", path, len(items))
		}
		if meta := body["meta"].(map[string]any); meta["total"] == float64(0) {
			t.Fatalf("%s: total must still count every match, got %v", path, meta)
		}
	}
}

func TestAdminCommissionsTotals(t *testing.T) {
	app := newTestApp(t)
	_, body := call(t, app, fiber.MethodGet, "/admin/commissions?status=pending&page_size=100", nil)
	totals := body["totals"].(map[string]any)
	if totals["paid"] != "0" {
		t.Fatalf("pending slice reports paid %v", totals["paid"])
	}
	for _, item := range body["data"].([]any) {
		if item.(map[string]any)["status"] != "pending" {
			t.Fatalf("unexpected commission %v", item)
		}
	}
}

func TestRegisterProspectEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, body := call(t, app, fiber.MethodPost, "/portal/agents/agent-001/prospects", map[string]any{
		"name":               "Lucía Prieto",
		"email":              "lucia@example.com",
		"client_type":        "vip",
		"program":            "empresa_eb1",
		"credit_available":   true,
		"credit_line_amount": 100000,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d: %v", status, body)
	}
	draft := data(t, body)
	prospect := draft["prospect"].(map[string]any)
	if prospect["status"] != "invited" || prospect["referred_by_agent"] != "agent-001" {
		t.Fatalf("unexpected prospect %v", prospect)
	}
	if url, _ := draft["invite_url"].(string); len(url) != len("https://mexaswallet.app/join/")+8 {
		t.Fatalf("unexpected invite url %q", url)
	}

	status, body = call(t, app, fiber.MethodPost, "/portal/agents/agent-001/prospects", map[string]any{
		"name":        "Sin Contacto",
		"client_type": "vip",
		"program":     "empresa_eb1",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing contact, got %d %v", status, body)
	}
}

func TestInviteLinkEndpoints(t *testing.T) {
	app := newTestApp(t)
	status, body := call(t, app, fiber.MethodPost, "/portal/agents/agent-005/invite-links", map[string]any{
		"client_type": "vip",
		"program":     "empresa_eb1",
	})
	if status != fiber.StatusForbidden || errorCode(body) != "FORBIDDEN" {
		t.Fatalf("expected 403, got %d %v", status, body)
	}

	status, body = call(t, app, fiber.MethodGet, "/portal/agents/agent-001/invite-links", nil)
	if status != fiber.StatusOK {
		t.Fatalf("list returned %d", status)
	}
	links := body["data"].([]any)
	if len(links) != 2 || links[0].(map[string]any)["id"] != "link-002" {
		t.Fatalf("unexpected links %v", links)
	}
}

func TestCreateAgentEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, body := call(t, app, fiber.MethodPost, "/admin/agents", map[string]any{
		"name":                   "Nueva Agente",
		"email":                  "nueva@olimpo.mx",
		"can_refer_standard":     true,
		"max_credit_line_amount": 50000,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d %v", status, body)
	}
	perms := data(t, body)["permissions"].(map[string]any)
	if perms["max_credit_line_amount"] != "0" {
		t.Fatalf("max credit must be zeroed without credit permission, got %v", perms["max_credit_line_amount"])
	}

	status, _ = call(t, app, fiber.MethodPut, "/admin/agents/agent-404", map[string]any{"name": "X", "email": "x@olimpo.mx"})
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 updating unknown agent, got %d", status)
	}
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	app := newTestApp(t)
	call(t, app, fiber.MethodGet, "/admin/agents", nil)
	_, body := call(t, app, fiber.MethodGet, "/metrics", nil)
	requests := data(t, body)["requests"].([]any)
	found := false
	for _, r := range requests {
		if r.(map[string]any)["route"] == "/admin/agents" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected /admin/agents in metrics, got %v", requests)
	}
}

func TestErrorBodyCarriesRequestID(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/admin/agents/agent-404", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	header := resp.Header.Get(fiber.HeaderXRequestID)
	if header == "" {
		t.Fatalf("expected %s header", fiber.HeaderXRequestID)
	}
	var body struct {
		Error struct {
			Code      string `json:"code"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "NOT_FOUND" || body.Error.RequestID != header {
		t.Fatalf("expected NOT_FOUND with request id %q, got %+v", header, body.Error)
	}
}

func TestMalformedBodyIsValidationError(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(fiber.MethodPost, "/admin/agents", bytes.NewReader([]byte("{not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
}

func TestReadyFailsWhenProbeFails(t *testing.T) {
	metrics := observability.NewMetrics()
	app := NewApp("referrals-test", zap.NewNop(), metrics, 0, RouteConfig{
		Health: handlers.NewHealthHandler("referrals-test", "test", metrics, handlers.Probe{
			Name:  "redis",
			Check: func(context.Context) error { return errors.New("connection refused") },
		}),
	})
	status, body := call(t, app, fiber.MethodGet, "/health/ready", nil)
	if status != fiber.StatusServiceUnavailable || errorCode(body) != "DEPENDENCY_UNAVAILABLE" {
		t.Fatalf("expected 503 DEPENDENCY_UNAVAILABLE, got %d %v", status, body)
	}
}
