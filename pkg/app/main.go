package app

import (
	"github.com/ghuser/catalog/pkg/cache"
	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every bounded context's services.New during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "category created", "category_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when RedisURL is empty
}
