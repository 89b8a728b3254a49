package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/olimpo/referrals/internal/api/http"
	"github.com/olimpo/referrals/internal/api/http/handlers"
	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/events"
	"github.com/olimpo/referrals/internal/observability"
	"github.com/olimpo/referrals/internal/persistence"
	"github.com/olimpo/referrals/internal/repository"
	"github.com/olimpo/referrals/internal/seed"
	"github.com/olimpo/referrals/internal/service"
	"github.com/olimpo/referrals/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.NewStore(seed.Dataset(), service.NewCommissionPolicy(cfg.Commission.BoundaryMonth))
	if err != nil {
		logger.Fatal("failed to load seed data", zap.Error(err))
	}
	logger.Info("store ready",
		zap.Int("agents", len(store.ListAgents())),
		zap.Int("prospects", len(store.ListProspects())),
		zap.Int("commissions", len(store.ListCommissions())))

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var statsCache service.StatsCache
	if c := persistence.NewStatsCache(redis, cfg.App.Name+":", cfg.Redis.StatsTTL()); c != nil {
		statsCache = c
	}

	dispatcher := events.NewBus()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	statsService := service.NewStatsService(service.StatsDependencies{
		Source:  store,
		Windows: service.CalendarWindows(cfg.Metrics.FirstMonth, cfg.Metrics.WindowCount),
		Cache:   statsCache,
		Logger:  logger,
	})
	directoryService := service.NewDirectoryService(store)
	agentService := service.NewAgentService(cfg.Simulation, service.AgentDependencies{
		Agents:     store,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	portalService := service.NewPortalService(cfg.Simulation, service.PortalDependencies{
		Agents:     store,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	if statsCache != nil {
		worker.StartStatsWarmer(ctx, statsService, logger)
	}

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.App.RequestTimeout(), httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, handlers.RedisProbe(redis)),
		Admin:  handlers.NewAdminHandler(statsService, directoryService, agentService),
		Portal: handlers.NewPortalHandler(statsService, directoryService, portalService, nil),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
