package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
)

type sampleStruct struct {
	CategoryID string `validate:"required,uuid"`
	Name       string `validate:"required,min=1,max=10"`
	Email      string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		CategoryID: "550e8400-e29b-41d4-a716-446655440000",
		Name:       "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["CategoryID"] != "This field is required" {
		t.Errorf("unexpected CategoryID message: %q", m["CategoryID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	s := sampleStruct{CategoryID: "not-a-uuid", Name: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["CategoryID"] != "Must be a valid UUID" {
		t.Errorf("unexpected CategoryID message: %q", m["CategoryID"])
	}
}

func TestFormatValidationErrors_min(t *testing.T) {
	s := sampleStruct{CategoryID: "550e8400-e29b-41d4-a716-446655440000", Name: ""}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	// empty string fails "required" before "min"
	if _, ok := m["Name"]; !ok {
		t.Error("expected Name validation error")
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{CategoryID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type categoryReq struct {
	ParentID string `json:"parent_id" validate:"required,uuid"`
	Name     string `json:"name"      validate:"required,min=1,max=255"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"parent_id":"550e8400-e29b-41d4-a716-446655440000","name":"Movies"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[categoryReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Movies" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[categoryReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Movies"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[categoryReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing parent_id")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidUUID(t *testing.T) {
	body := `{"parent_id":"not-uuid","name":"Movies"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[categoryReq](w, r)
	if ok {
		t.Fatal("expected ok=false for invalid UUID")
	}
	if !strings.Contains(w.Body.String(), "UUID") {
		t.Errorf("expected UUID error in body, got: %s", w.Body.String())
	}
}

// --- ValidateEntity ---

type entityFields struct {
	Name        string  `json:"name"        validate:"required,max=5"`
	Description *string `json:"description" validate:"omitempty,max=3"`
	IsActive    bool    `json:"is_active"`
}

func TestValidateEntity(t *testing.T) {
	long := "too long"

	tests := []struct {
		name   string
		input  any
		want   map[string]string
		wantOK bool
	}{
		{"valid", &entityFields{Name: "Books"}, nil, true},
		{"nil description is allowed", &entityFields{Name: "a", Description: nil}, nil, true},
		{"missing name", &entityFields{}, map[string]string{"name": "This field is required"}, false},
		{"name too long", &entityFields{Name: "123456"}, map[string]string{"name": "Maximum length is 5"}, false},
		{"several fields", &entityFields{Description: &long}, map[string]string{
			"name":        "This field is required",
			"description": "Maximum length is 3",
		}, false},
		{"not a struct", "plain string", map[string]string{"entity": ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pkgvalidator.ValidateEntity(tt.input)
			if tt.wantOK {
				if got != nil {
					t.Fatalf("expected no errors, got %v", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected fields %v, got %v", tt.want, got)
			}
			for field, msg := range tt.want {
				msgs, ok := got[field]
				if !ok || len(msgs) == 0 {
					t.Fatalf("expected messages for %q, got %v", field, got)
				}
				if msg != "" && msgs[0] != msg {
					t.Errorf("%s: got %q, want %q", field, msgs[0], msg)
				}
			}
		})
	}
}
