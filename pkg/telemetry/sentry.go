package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/catalog/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// sentryOptions tags every event with the service identity from cfg.
func sentryOptions(cfg *config.Config) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName,
		TracesSampleRate: 0.2,
		Tags: map[string]string{
			"service":         cfg.ServiceName,
			"service.version": cfg.ServiceVersion,
			"environment":     cfg.Environment,
		},
	}
}

// CaptureError reports err to Sentry through the hub SentryMiddleware bound
// to ctx, or the global hub outside a request. It does nothing when Sentry is
// not initialized.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.CaptureException(err)
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and
// binds a per-request hub for CaptureError.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
