package worker

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/service"
)

type countingStats struct {
	mu      sync.Mutex
	filters []service.DashboardFilter
}

func (c *countingStats) GlobalStats(_ context.Context, f service.DashboardFilter) service.GlobalStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = append(c.filters, f)
	return service.GlobalStats{}
}

func TestStatsWarmerComputesEveryFilter(t *testing.T) {
	stats := &countingStats{}
	<-StartStatsWarmer(context.Background(), stats, zap.NewNop())

	if len(stats.filters) != 5 {
		t.Fatalf("expected 5 warmed filters, got %d", len(stats.filters))
	}
	if !stats.filters[0].IsZero() {
		t.Fatalf("first warmed filter should be unfiltered")
	}
}

func TestStatsWarmerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := &countingStats{}
	<-StartStatsWarmer(ctx, stats, zap.NewNop())
	if len(stats.filters) != 0 {
		t.Fatalf("cancelled warmer computed %d filters", len(stats.filters))
	}
}
