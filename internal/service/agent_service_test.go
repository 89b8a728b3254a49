package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/events"
)

func newTestAgentService(t *testing.T) (*AgentService, *recorder) {
	t.Helper()
	dispatcher := events.NewBus()
	rec := &recorder{}
	rec.subscribe(dispatcher, events.EventAgentSaved)
	svc := NewAgentService(instantSimulation(), AgentDependencies{
		Agents:     seedStore(t),
		Dispatcher: dispatcher,
		Now:        func() time.Time { return fixedNow },
		NewID:      func() string { return "agent-new" },
	})
	return svc, rec
}

func TestCreateAgent(t *testing.T) {
	svc, rec := newTestAgentService(t)
	agent, err := svc.CreateAgent(context.Background(), SaveAgentInput{
		Name:                "Nuevo Agente",
		Email:               "nuevo@olimpo.mx",
		CanReferStandard:    true,
		CanGrantCredit:      false,
		MaxCreditLineAmount: decimal.NewFromInt(90000),
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if agent.ID != "agent-new" || agent.Status != domain.AgentStatusActive || !agent.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected agent %+v", agent)
	}
	if !agent.Permissions.MaxCreditLineAmount.IsZero() {
		t.Fatalf("max credit must be forced to zero without credit permission, got %s", agent.Permissions.MaxCreditLineAmount)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected agent_saved event")
	}
	if payload, ok := rec.events[0].Payload.(events.AgentSavedPayload); !ok || !payload.Created {
		t.Fatalf("unexpected payload %+v", rec.events[0].Payload)
	}
}

func TestCreateAgentRejections(t *testing.T) {
	cases := []struct {
		name   string
		input  SaveAgentInput
		status int
	}{
		{"missing name", SaveAgentInput{Email: "x@olimpo.mx"}, http.StatusBadRequest},
		{"missing email", SaveAgentInput{Name: "X"}, http.StatusBadRequest},
		{"negative max", SaveAgentInput{Name: "X", Email: "x@olimpo.mx", CanGrantCredit: true, MaxCreditLineAmount: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"bad status", SaveAgentInput{Name: "X", Email: "x@olimpo.mx", Status: "suspended"}, http.StatusBadRequest},
		{"taken email", SaveAgentInput{Name: "X", Email: "Diego.Mendoza@olimpo.mx"}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, rec := newTestAgentService(t)
			_, err := svc.CreateAgent(context.Background(), tc.input)
			expectStatus(t, err, tc.status)
			if len(rec.events) != 0 {
				t.Fatalf("rejected save published events")
			}
		})
	}
}

func TestUpdateAgent(t *testing.T) {
	svc, rec := newTestAgentService(t)
	agent, err := svc.UpdateAgent(context.Background(), "agent-001", SaveAgentInput{
		Name:                "Diego Mendoza",
		Email:               "diego.mendoza@olimpo.mx",
		CanReferVIP:         true,
		CanGrantCredit:      true,
		MaxCreditLineAmount: decimal.NewFromInt(600000),
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if agent.ID != "agent-001" || agent.Name != "Diego Mendoza" || agent.Status != domain.AgentStatusActive {
		t.Fatalf("unexpected agent %+v", agent)
	}
	if agent.CreatedAt.Equal(fixedNow) {
		t.Fatalf("update must keep the original creation time")
	}
	if !agent.Permissions.MaxCreditLineAmount.Equal(decimal.NewFromInt(600000)) {
		t.Fatalf("unexpected max credit %s", agent.Permissions.MaxCreditLineAmount)
	}
	if payload := rec.events[0].Payload.(events.AgentSavedPayload); payload.Created {
		t.Fatalf("update reported as creation")
	}
}

func TestUpdateAgentKeepsInactiveStatus(t *testing.T) {
	svc, _ := newTestAgentService(t)
	agent, err := svc.UpdateAgent(context.Background(), "agent-007", SaveAgentInput{Name: "Diego Vargas", Email: "diego.vargas@olimpo.mx"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if agent.Status != domain.AgentStatusInactive {
		t.Fatalf("expected status to stay inactive, got %s", agent.Status)
	}
}

func TestUpdateUnknownAgent(t *testing.T) {
	svc, _ := newTestAgentService(t)
	_, err := svc.UpdateAgent(context.Background(), "agent-404", SaveAgentInput{Name: "X", Email: "x@olimpo.mx"})
	expectStatus(t, err, http.StatusNotFound)
}
