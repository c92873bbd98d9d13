// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/catalog/pkg/domain"
	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/telemetry"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Validation failures carry their per-field messages under "fields".
// Defaults to 500 Internal Server Error for unrecognized errors, whose
// message is never exposed to the client but is reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		captureError(r.Context(), err)
	}

	var ve *domain.EntityValidationError
	if status == http.StatusUnprocessableEntity && errors.As(err, &ve) {
		httpx.JSONFieldErrors(w, status, "Validation failed", ve.Errors)
		return
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

var captureError = telemetry.CaptureError

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrInvalidUuid):
		return http.StatusBadRequest // 400
	case errors.Is(err, categorydomain.ErrInvalidCategory),
		errors.Is(err, domain.ErrEntityValidation):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
