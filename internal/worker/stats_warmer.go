package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/domain"
	"github.com/olimpo/referrals/internal/service"
)

// GlobalStatsComputer is the part of the stats service the warmer drives.
type GlobalStatsComputer interface {
	GlobalStats(ctx context.Context, filter service.DashboardFilter) service.GlobalStats
}

// WarmFilters lists the dashboard filters worth precomputing: the unfiltered
// view plus every single client type and program.
func WarmFilters() []service.DashboardFilter {
	filters := []service.DashboardFilter{{}}
	for _, clientType := range domain.ClientTypes {
		ct := clientType
		filters = append(filters, service.DashboardFilter{ClientType: &ct})
	}
	for _, program := range domain.Programs {
		p := program
		filters = append(filters, service.DashboardFilter{Program: &p})
	}
	return filters
}

// StartStatsWarmer fills the stats cache in the background so the first
// dashboard loads hit it. It stops early when ctx is cancelled.
func StartStatsWarmer(ctx context.Context, stats GlobalStatsComputer, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if stats == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		warmed := 0
		for _, filter := range WarmFilters() {
			if ctx.Err() != nil {
				logger.Info("stats warmer cancelled", zap.Int("warmed", warmed))
				return
			}
			stats.GlobalStats(ctx, filter)
			warmed++
		}
		logger.Info("stats cache warmed", zap.Int("filters", warmed))
	}()
	return done
}
