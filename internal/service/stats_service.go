package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/domain"
)

// StatsSource is the read surface the aggregators reduce over.
type StatsSource interface {
	ListProspects() []domain.Prospect
	ListTransactions() []domain.Transaction
	ListCommissions() []domain.Commission
	ProspectsByAgent(agentID string) []domain.Prospect
	TransactionsByAgent(agentID string) []domain.Transaction
	CommissionsByAgent(agentID string) []domain.Commission
}

// StatsCache stores serialized dashboard rollups.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// StatsService serves the read-only rollups.
type StatsService struct {
	source  StatsSource
	windows []MonthWindow
	cache   StatsCache
	logger  *zap.Logger
}

// StatsDependencies bundles collaborators for the stats service.
type StatsDependencies struct {
	Source  StatsSource
	Windows []MonthWindow
	Cache   StatsCache
	Logger  *zap.Logger
}

// NewStatsService constructs the service. Cache may be nil.
func NewStatsService(deps StatsDependencies) *StatsService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		source:  deps.Source,
		windows: deps.Windows,
		cache:   deps.Cache,
		logger:  logger,
	}
}

// AgentStats rolls up one agent. Unknown ids yield zero values.
func (s *StatsService) AgentStats(agentID string) AgentStats {
	return ComputeAgentStats(
		s.source.ProspectsByAgent(agentID),
		s.source.TransactionsByAgent(agentID),
		s.source.CommissionsByAgent(agentID),
	)
}

// MonthlyMetrics buckets one agent's activity into the configured windows.
func (s *StatsService) MonthlyMetrics(agentID string) []MonthlyMetric {
	return ComputeMonthlyMetrics(
		s.windows,
		s.source.ProspectsByAgent(agentID),
		s.source.TransactionsByAgent(agentID),
		s.source.CommissionsByAgent(agentID),
	)
}

// GlobalStats rolls up the whole program. The snapshot never changes, so a
// cached rollup for the same filter stays valid until it expires.
func (s *StatsService) GlobalStats(ctx context.Context, filter DashboardFilter) GlobalStats {
	key := globalStatsKey(filter)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached GlobalStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
			s.logger.Warn("discarding unreadable cached stats", zap.String("key", key))
		}
	}

	stats := ComputeGlobalStats(
		s.source.ListProspects(),
		s.source.ListTransactions(),
		s.source.ListCommissions(),
		filter,
	)

	if s.cache != nil {
		raw, err := json.Marshal(stats)
		if err == nil {
			err = s.cache.Set(ctx, key, raw)
		}
		if err != nil {
			s.logger.Debug("stats cache write skipped", zap.String("key", key), zap.Error(err))
		}
	}
	return stats
}

func globalStatsKey(f DashboardFilter) string {
	parts := []string{"stats", "global"}
	parts = append(parts, timeKey(f.DateFrom), timeKey(f.DateTo))
	if f.ClientType != nil {
		parts = append(parts, string(*f.ClientType))
	} else {
		parts = append(parts, "all")
	}
	if f.Program != nil {
		parts = append(parts, string(*f.Program))
	} else {
		parts = append(parts, "all")
	}
	return strings.Join(parts, ":")
}

func timeKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}
