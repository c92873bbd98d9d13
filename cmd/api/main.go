package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/pkg/cache"
	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/telemetry"
	categoryApi "github.com/ghuser/catalog/services/category/application/api"
	categorySvcs "github.com/ghuser/catalog/services/category/application/services"
	"github.com/ghuser/catalog/services/category/application/subscribers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	// Redis is optional: without it category reads go straight to the store.
	redisClient, err := cache.NewRedisClient(cfg)
	switch {
	case errors.Is(err, cache.ErrDisabled):
		log.Info("redis cache disabled")
	case err != nil:
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	default:
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	categories, err := categorySvcs.New(appConfig)
	if err != nil {
		log.Error("failed to wire category services", "error", err)
		os.Exit(1)
	}
	if err := categories.Category.Seed(ctx, cfg.SeedCategories); err != nil {
		log.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}
	if err := subscribers.StartAuditLog(ctx, eventBus, log); err != nil {
		log.Error("failed to start category audit log", "error", err)
		os.Exit(1)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{EventBus: eventBus}
	if redisClient != nil {
		checks.Redis = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		categoryApi.CategoryRoutes(r, categories)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}
