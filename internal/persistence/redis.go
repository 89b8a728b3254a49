package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/config"
)

// ErrRedisDisabled is returned by a Redis handle built without an address.
var ErrRedisDisabled = errors.New("redis client not configured")

// Redis wraps the go-redis client. A nil *Redis is a valid, disabled handle.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. It returns nil
// when no address is configured.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if !cfg.Enabled() {
		logger.Info("redis disabled, stats cache off")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return ErrRedisDisabled
	}
	return r.Client.Ping(ctx).Err()
}

// StatsCache stores serialized rollups under a key prefix with a fixed TTL.
type StatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStatsCache returns nil when r is disabled.
func NewStatsCache(r *Redis, prefix string, ttl time.Duration) *StatsCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &StatsCache{client: r.Client, prefix: prefix, ttl: ttl}
}

// Get returns redis.Nil on a miss.
func (s *StatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, s.prefix+key).Bytes()
}

// Set stores value. A zero TTL keeps it until eviction.
func (s *StatsCache) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}
