package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/catalog/pkg/domain"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
)

var testID = domain.MustParseUuid("8d0b0c3e-8f6e-4d3a-9c5b-2f1e0a9b8c7d")

func validationErr() error {
	ve := domain.NewEntityValidationError(map[string][]string{"name": {"This field is required"}})
	return fmt.Errorf("%w: %w", categorydomain.ErrInvalidCategory, ve)
}

func testRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/categories", http.NoBody)
}

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrNotFound", domain.ErrNotFound, http.StatusNotFound},
		{"NotFoundError", domain.NewNotFoundError("Category", testID), http.StatusNotFound},
		{"wrapped NotFoundError", fmt.Errorf("delete category: %w", domain.NewNotFoundError("Category", testID)), http.StatusNotFound},
		{"ErrInvalidUuid", fmt.Errorf("get category %q: %w", "x", domain.ErrInvalidUuid), http.StatusBadRequest},
		{"ErrInvalidCategory", categorydomain.ErrInvalidCategory, http.StatusUnprocessableEntity},
		{"EntityValidationError", domain.NewEntityValidationError(nil), http.StatusUnprocessableEntity},
		{"wrapped validation", validationErr(), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, testRequest(), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, testRequest(), domain.NewNotFoundError("Category", testID))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	want := "Category not found with 8d0b0c3e-8f6e-4d3a-9c5b-2f1e0a9b8c7d"
	if body["error"] != want {
		t.Fatalf("expected error %q, got %q", want, body["error"])
	}
}

func TestWriteError_ValidationFields(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, testRequest(), validationErr())

	var body struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
	if got := body.Fields["name"]; len(got) != 1 || got[0] != "This field is required" {
		t.Fatalf("unexpected name messages: %v", got)
	}
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, testRequest(), errors.New("dial tcp 10.0.0.3:6379: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "Internal Server Error" {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, testRequest(), domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_ReportsServerErrors(t *testing.T) {
	var captured []error
	orig := captureError
	captureError = func(_ context.Context, err error) { captured = append(captured, err) }
	t.Cleanup(func() { captureError = orig })

	tests := []struct {
		name       string
		err        error
		wantReport bool
	}{
		{"internal error", fmt.Errorf("search categories: %w", errors.New("db down")), true},
		{"not found", domain.NewNotFoundError("Category", testID), false},
		{"malformed id", domain.ErrInvalidUuid, false},
		{"validation", validationErr(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil
			WriteError(httptest.NewRecorder(), testRequest(), tt.err)

			if tt.wantReport {
				if len(captured) != 1 || captured[0] != tt.err {
					t.Fatalf("expected %v to be reported, got %v", tt.err, captured)
				}
				return
			}
			if len(captured) != 0 {
				t.Fatalf("expected no report, got %v", captured)
			}
		})
	}
}
