// Package services contains stateless domain services for the category
// bounded context.
package services

import (
	"fmt"

	"github.com/ghuser/catalog/pkg/domain"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	categorydomain "github.com/ghuser/catalog/services/category/domain"
	"github.com/ghuser/catalog/services/category/domain/models"
)

// categoryRules mirrors the validated fields of a Category. Names follow the
// JSON tags so messages are keyed the way clients send them.
type categoryRules struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	IsActive    bool    `json:"isActive"`
}

// ValidateCategory checks c against the category rules:
//   - name is required and at most 255 characters
//   - description is optional
//
// On failure the error matches both ErrInvalidCategory and
// domain.ErrEntityValidation, and errors.As yields the
// *domain.EntityValidationError with per-field messages.
func ValidateCategory(c *models.Category) error {
	if c == nil {
		return fmt.Errorf("%w: category cannot be nil", categorydomain.ErrInvalidCategory)
	}

	fields := pkgvalidator.ValidateEntity(categoryRules{
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	})
	if fields == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", categorydomain.ErrInvalidCategory, domain.NewEntityValidationError(fields))
}

var _ models.Validator = ValidateCategory
