package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ghuser/catalog/pkg/domain"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
	"github.com/ghuser/catalog/services/category/domain/models"
)

func strPtr(s string) *string { return &s }

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name       string
		category   *models.Category
		wantFields map[string][]string
	}{
		{"valid name", &models.Category{Name: "Movie"}, nil},
		{"valid with description", &models.Category{Name: "Movie", Description: strPtr("some description")}, nil},
		{"empty description is allowed", &models.Category{Name: "Movie", Description: strPtr("")}, nil},
		{"inactive is allowed", &models.Category{Name: "Movie", IsActive: false}, nil},
		{"255 characters", &models.Category{Name: strings.Repeat("a", 255)}, nil},
		{"255 multi-byte characters", &models.Category{Name: strings.Repeat("é", 255)}, nil},
		{
			"empty name",
			&models.Category{Name: ""},
			map[string][]string{"name": {"This field is required"}},
		},
		{
			"256 characters",
			&models.Category{Name: strings.Repeat("a", 256)},
			map[string][]string{"name": {"Maximum length is 255"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.category)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, categorydomain.ErrInvalidCategory) {
				t.Fatalf("expected ErrInvalidCategory, got %v", err)
			}
			if !errors.Is(err, domain.ErrEntityValidation) {
				t.Fatalf("expected ErrEntityValidation, got %v", err)
			}
			var ve *domain.EntityValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *EntityValidationError, got %T", err)
			}
			if len(ve.Errors) != len(tt.wantFields) {
				t.Fatalf("expected fields %v, got %v", tt.wantFields, ve.Errors)
			}
			for field, want := range tt.wantFields {
				got := ve.Errors[field]
				if strings.Join(got, "|") != strings.Join(want, "|") {
					t.Errorf("field %q: expected %v, got %v", field, want, got)
				}
			}
		})
	}
}

func TestValidateCategory_Nil(t *testing.T) {
	err := ValidateCategory(nil)
	if !errors.Is(err, categorydomain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

// Validation messages are keyed by the rule's json tag, which must match the
// key the entity is serialized under.
func TestCategoryRules_KeysMatchEntityJSON(t *testing.T) {
	body := (&models.Category{}).ToJSON()

	rt := reflect.TypeOf(categoryRules{})
	for i := range rt.NumField() {
		f := rt.Field(i)
		t.Run(f.Name, func(t *testing.T) {
			key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if _, ok := body[key]; !ok {
				t.Fatalf("rule key %q is not a Category JSON key", key)
			}
		})
	}
}
