package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const monthLayout = "2006-01"

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Commission   CommissionConfig
	Metrics      MetricsConfig
	Simulation   SimulationConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// RedisConfig holds Redis connection values. An empty Addr disables the
// stats cache.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	StatsTTLSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// CommissionConfig holds the payout schedule boundary.
type CommissionConfig struct {
	BoundaryMonth time.Time
}

// MetricsConfig defines the monthly metric windows.
type MetricsConfig struct {
	FirstMonth  time.Time
	WindowCount int
}

// SimulationConfig tunes the simulated mutations.
type SimulationConfig struct {
	MutationDelayMS   int
	InviteLinkDelayMS int
	InviteBaseURL     string
	InviteTTLDays     int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	boundary, err := getEnvAsMonth("COMMISSION_BOUNDARY_MONTH", "2026-01")
	if err != nil {
		return nil, err
	}
	firstMonth, err := getEnvAsMonth("METRICS_FIRST_MONTH", "2025-10")
	if err != nil {
		return nil, err
	}
	windowCount := getEnvAsInt("METRICS_WINDOW_COUNT", 5)
	if windowCount <= 0 {
		return nil, fmt.Errorf("invalid METRICS_WINDOW_COUNT: %d", windowCount)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "referral-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:            os.Getenv("REDIS_ADDR"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			StatsTTLSeconds: getEnvAsInt("REDIS_STATS_TTL_SECONDS", 300),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Commission: CommissionConfig{
			BoundaryMonth: boundary,
		},
		Metrics: MetricsConfig{
			FirstMonth:  firstMonth,
			WindowCount: windowCount,
		},
		Simulation: SimulationConfig{
			MutationDelayMS:   getEnvAsInt("SIMULATED_MUTATION_DELAY_MS", 800),
			InviteLinkDelayMS: getEnvAsInt("SIMULATED_INVITE_DELAY_MS", 600),
			InviteBaseURL:     getEnv("INVITE_BASE_URL", "https://mexaswallet.app/join/"),
			InviteTTLDays:     getEnvAsInt("INVITE_TTL_DAYS", 30),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "referidos@mexaswallet.app"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// StatsTTL returns how long cached rollups live.
func (r RedisConfig) StatsTTL() time.Duration {
	if r.StatsTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(r.StatsTTLSeconds) * time.Second
}

// MutationDelay is the simulated latency of prospect and agent writes.
func (s SimulationConfig) MutationDelay() time.Duration {
	return millis(s.MutationDelayMS)
}

// InviteLinkDelay is the simulated latency of invite link generation.
func (s SimulationConfig) InviteLinkDelay() time.Duration {
	return millis(s.InviteLinkDelayMS)
}

// InviteTTL is how long a generated invite link stays valid.
func (s SimulationConfig) InviteTTL() time.Duration {
	return time.Duration(s.InviteTTLDays) * 24 * time.Hour
}

func millis(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsMonth(key, fallback string) (time.Time, error) {
	month, err := time.ParseInLocation(monthLayout, getEnv(key, fallback), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return month, nil
}
