package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/events"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/seed"
	apperrors "github.com/olimpo/referrals/pkg/util"
)

var fixedNow = time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC)

func seedStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := repository.NewStore(seed.Dataset(), NewCommissionPolicy(testBoundary))
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func instantSimulation() config.SimulationConfig {
	return config.SimulationConfig{InviteBaseURL: "https://mexaswallet.app/join/", InviteTTLDays: 30}
}

type recorder struct {
	events []events.Event
}

func (r *recorder) subscribe(d events.Dispatcher, types ...events.EventType) {
	for _, eventType := range types {
		d.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			r.events = append(r.events, e)
			return nil
		})
	}
}

func newTestPortal(t *testing.T, cfg config.SimulationConfig) (*PortalService, *recorder) {
	t.Helper()
	dispatcher := events.NewBus()
	rec := &recorder{}
	rec.subscribe(dispatcher, events.EventProspectRegistered, events.EventInviteLinkGenerated)
	svc := NewPortalService(cfg, PortalDependencies{
		Agents:     seedStore(t),
		Dispatcher: dispatcher,
		Now:        func() time.Time { return fixedNow },
		NewID:      func() string { return "draft-1" },
		NewCode:    func() string { return "ABCD2345" },
	})
	return svc, rec
}

func expectStatus(t *testing.T, err error, status int) {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error with status %d, got %v", status, err)
	}
	if de.HTTPStatus != status {
		t.Fatalf("expected status %d got %d (%s)", status, de.HTTPStatus, de.Message)
	}
}

func TestRegisterProspect(t *testing.T) {
	svc, rec := newTestPortal(t, instantSimulation())
	draft, err := svc.RegisterProspect(context.Background(), "agent-001", RegisterProspectInput{
		Name:             "  Lucía Prieto  ",
		Email:            "lucia@example.com",
		ClientType:       domain.ClientTypeVIP,
		Program:          domain.ProgramEmpresaEB1,
		CreditAvailable:  true,
		CreditLineAmount: decimal.NewFromInt(150000),
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	p := draft.Prospect
	if p.ID != "draft-1" || p.Name != "Lucía Prieto" || p.ReferredByAgent != "agent-001" {
		t.Fatalf("unexpected draft %+v", p)
	}
	if p.Status != domain.ReferralInvited || len(p.StatusHistory) != 1 || !p.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected fresh invited prospect, got %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("draft does not validate: %v", err)
	}
	if draft.InviteURL != "https://mexaswallet.app/join/ABCD2345" {
		t.Fatalf("unexpected invite url %s", draft.InviteURL)
	}
	wantText := "Te%20invito%20a%20unirte%20al%20programa%3A%20https%3A%2F%2Fmexaswallet.app%2Fjoin%2FABCD2345"
	if draft.Share.WhatsApp != "https://wa.me/?text="+wantText || draft.Share.SMS != "sms:?body="+wantText {
		t.Fatalf("unexpected share links %+v", draft.Share)
	}
	if len(rec.events) != 1 || rec.events[0].Type != events.EventProspectRegistered || rec.events[0].AgentID != "agent-001" {
		t.Fatalf("expected one prospect_registered event, got %+v", rec.events)
	}
}

func TestRegisterProspectRejections(t *testing.T) {
	base := RegisterProspectInput{
		Name:       "Prospecto",
		Phone:      "+52 55 0000 0000",
		ClientType: domain.ClientTypeStandard,
		Program:    domain.ProgramEmpresaEB2,
	}
	cases := []struct {
		name    string
		agentID string
		mutate  func(*RegisterProspectInput)
		status  int
	}{
		{"blank name", "agent-001", func(in *RegisterProspectInput) { in.Name = "   " }, http.StatusBadRequest},
		{"no contact", "agent-001", func(in *RegisterProspectInput) { in.Phone = "" }, http.StatusBadRequest},
		{"bad email", "agent-001", func(in *RegisterProspectInput) { in.Email = "nope" }, http.StatusBadRequest},
		{"unknown program", "agent-001", func(in *RegisterProspectInput) { in.Program = "empresa_eb9" }, http.StatusBadRequest},
		{"vip not allowed", "agent-003", func(in *RegisterProspectInput) { in.ClientType = domain.ClientTypeVIP }, http.StatusForbidden},
		{"credit not allowed", "agent-005", func(in *RegisterProspectInput) {
			in.CreditAvailable = true
			in.CreditLineAmount = decimal.NewFromInt(1000)
		}, http.StatusForbidden},
		{"credit above max", "agent-003", func(in *RegisterProspectInput) {
			in.CreditAvailable = true
			in.CreditLineAmount = decimal.NewFromInt(150001)
		}, http.StatusBadRequest},
		{"zero credit offered", "agent-003", func(in *RegisterProspectInput) {
			in.CreditAvailable = true
			in.CreditLineAmount = decimal.Zero
		}, http.StatusBadRequest},
		{"negative credit offered", "agent-003", func(in *RegisterProspectInput) {
			in.CreditAvailable = true
			in.CreditLineAmount = decimal.NewFromInt(-1)
		}, http.StatusBadRequest},
		{"inactive agent", "agent-007", func(*RegisterProspectInput) {}, http.StatusForbidden},
		{"unknown agent", "agent-404", func(*RegisterProspectInput) {}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, rec := newTestPortal(t, instantSimulation())
			input := base
			tc.mutate(&input)
			_, err := svc.RegisterProspect(context.Background(), tc.agentID, input)
			expectStatus(t, err, tc.status)
			if len(rec.events) != 0 {
				t.Fatalf("rejected registration published %d events", len(rec.events))
			}
		})
	}
}

func TestRegisterProspectCreditAtMaxAllowed(t *testing.T) {
	svc, _ := newTestPortal(t, instantSimulation())
	draft, err := svc.RegisterProspect(context.Background(), "agent-003", RegisterProspectInput{
		Name:             "Prospecto",
		Phone:            "+52 33 0000 0000",
		ClientType:       domain.ClientTypeStandard,
		Program:          domain.ProgramEmpresaEB2,
		CreditAvailable:  true,
		CreditLineAmount: decimal.NewFromInt(150000),
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !draft.Prospect.CreditLineAmount.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("unexpected credit line %s", draft.Prospect.CreditLineAmount)
	}
}

func TestRegisterProspectHonoursContext(t *testing.T) {
	cfg := instantSimulation()
	cfg.MutationDelayMS = 5000
	svc, rec := newTestPortal(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := svc.RegisterProspect(ctx, "agent-001", RegisterProspectInput{
		Name:       "Prospecto",
		Email:      "p@example.com",
		ClientType: domain.ClientTypeStandard,
		Program:    domain.ProgramEmpresaEB1,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("cancelled registration published events")
	}
}

func TestGenerateInviteLink(t *testing.T) {
	svc, rec := newTestPortal(t, instantSimulation())
	draft, err := svc.GenerateInviteLink(context.Background(), "agent-002", InviteLinkInput{
		ClientType: domain.ClientTypeVIP,
		Program:    domain.ProgramEmpresaEB2,
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	link := draft.Link
	if link.Code != "ABCD2345" || link.URL != "https://mexaswallet.app/join/ABCD2345" || link.AgentID != "agent-002" {
		t.Fatalf("unexpected link %+v", link)
	}
	if link.Used() || link.Expired(fixedNow) {
		t.Fatalf("fresh link must be unused and unexpired")
	}
	if !link.ExpiresAt.Equal(fixedNow.AddDate(0, 0, 30)) {
		t.Fatalf("unexpected expiry %v", link.ExpiresAt)
	}
	if !link.CreditLineAmount.IsZero() {
		t.Fatalf("credit line must be zero without credit, got %s", link.CreditLineAmount)
	}
	if !strings.Contains(draft.Share.WhatsApp, "Olimpo%3A%20https%3A%2F%2F") {
		t.Fatalf("unexpected share text %s", draft.Share.WhatsApp)
	}
	if len(rec.events) != 1 || rec.events[0].Type != events.EventInviteLinkGenerated {
		t.Fatalf("expected invite_link_generated event, got %+v", rec.events)
	}
}

func TestGenerateInviteLinkRespectsPermissions(t *testing.T) {
	svc, _ := newTestPortal(t, instantSimulation())
	_, err := svc.GenerateInviteLink(context.Background(), "agent-005", InviteLinkInput{
		ClientType: domain.ClientTypeVIP,
		Program:    domain.ProgramEmpresaEB1,
	})
	expectStatus(t, err, http.StatusForbidden)
}

func TestGenerateInviteCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateInviteCode()
		if len(code) != 8 {
			t.Fatalf("expected 8 characters, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(inviteCodeAlphabet, r) {
				t.Fatalf("code %q contains %q", code, r)
			}
		}
	}
}
