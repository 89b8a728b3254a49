package seed_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/seed"
	"github.com/olimpo/referrals/internal/service"
)

var boundary = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDatasetShape(t *testing.T) {
	data := seed.Dataset()
	if len(data.Agents) != 10 || len(data.Prospects) != 35 || len(data.Transactions) != 70 || len(data.InviteLinks) != 8 {
		t.Fatalf("unexpected dataset sizes %d/%d/%d/%d", len(data.Agents), len(data.Prospects), len(data.Transactions), len(data.InviteLinks))
	}
	for _, p := range data.Prospects {
		if err := p.Validate(); err != nil {
			t.Fatalf("prospect %s: %v", p.ID, err)
		}
	}
}

func TestDatasetIsDeterministic(t *testing.T) {
	a, b := seed.Dataset(), seed.Dataset()
	if !reflect.DeepEqual(a.Prospects, b.Prospects) {
		t.Fatalf("status histories differ between builds")
	}
	a.Prospects[0].StatusHistory[0].Status = domain.ReferralChurn
	if seed.Dataset().Prospects[0].StatusHistory[0].Status != domain.ReferralInvited {
		t.Fatalf("Dataset shares backing arrays between calls")
	}
}

func TestStatusHistory(t *testing.T) {
	base := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	history := seed.StatusHistory("prospect-x", domain.ReferralChurn, base)
	if len(history) != 4 {
		t.Fatalf("expected 4 entries got %d", len(history))
	}
	if err := domain.ValidateStatusHistory(domain.ReferralChurn, history); err != nil {
		t.Fatalf("invalid history: %v", err)
	}
	for i, entry := range history {
		lo := base.AddDate(0, 0, 3*i)
		hi := lo.AddDate(0, 0, 3)
		if entry.Timestamp.Before(lo) || !entry.Timestamp.Before(hi) {
			t.Fatalf("entry %d at %v outside [%v, %v)", i, entry.Timestamp, lo, hi)
		}
		if h := entry.Timestamp.Hour(); h < 9 || h > 18 {
			t.Fatalf("entry %d hour %d outside business hours", i, h)
		}
	}
}

func TestSeedAgentRoundTrip(t *testing.T) {
	store, err := repository.NewStore(seed.Dataset(), service.NewCommissionPolicy(boundary))
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if got := len(store.ListCommissions()); got != 35 {
		t.Fatalf("expected one commission per funding transaction, got %d", got)
	}

	stats := service.ComputeAgentStats(
		store.ProspectsByAgent("agent-001"),
		store.TransactionsByAgent("agent-001"),
		store.CommissionsByAgent("agent-001"),
	)
	if stats.TotalReferrals != 6 || stats.Active != 4 || stats.Registered != 1 || stats.Invited != 1 || stats.Churn != 0 {
		t.Fatalf("unexpected agent-001 stats %+v", stats)
	}
	if stats.CommissionGenerated.LessThan(stats.CommissionPaid) {
		t.Fatalf("paid %s exceeds generated %s", stats.CommissionPaid, stats.CommissionGenerated)
	}

	global := service.ComputeGlobalStats(store.ListProspects(), store.ListTransactions(), store.ListCommissions(), service.DashboardFilter{})
	if global.TotalReferrals != 35 || global.StatusBreakdown.Total() != 35 {
		t.Fatalf("unexpected global totals %+v", global.StatusBreakdown)
	}
	if global.ActiveAgents != 10 {
		t.Fatalf("expected all 10 agents to have referrals, got %d", global.ActiveAgents)
	}
	if !global.CommissionPaid.Add(global.CommissionPending).Equal(global.CommissionGenerated) {
		t.Fatalf("paid + pending != generated")
	}
}
