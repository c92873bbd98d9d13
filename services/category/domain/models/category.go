package models

import (
	"fmt"
	"time"

	"github.com/ghuser/catalog/pkg/domain"
)

// EntityType is the name used for Category in repository errors.
const EntityType = "Category"

// Category is the core aggregate for this bounded context.
type Category struct {
	CategoryID  domain.Uuid
	Name        string
	Description *string // nil when not set
	IsActive    bool
	CreatedAt   time.Time
}

// CategoryProps holds the fields a Category is built from. Zero values take
// defaults: a generated ID, the current time, no description, active.
type CategoryProps struct {
	CategoryID  domain.Uuid
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// CreateCategoryProps holds the fields a caller may choose on creation.
type CreateCategoryProps struct {
	Name        string
	Description *string
	IsActive    *bool
}

// Validator checks a Category and returns a *domain.EntityValidationError
// when any rule fails.
type Validator func(c *Category) error

// NewCategory builds a Category from props without validating it. Use it to
// rebuild categories that were valid when stored.
func NewCategory(props CategoryProps) (*Category, error) {
	id := props.CategoryID
	if id.IsZero() {
		var err error
		if id, err = domain.NewUuid(); err != nil {
			return nil, fmt.Errorf("new category: %w", err)
		}
	}

	createdAt := props.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	isActive := true
	if props.IsActive != nil {
		isActive = *props.IsActive
	}

	return &Category{
		CategoryID:  id,
		Name:        props.Name,
		Description: props.Description,
		IsActive:    isActive,
		CreatedAt:   createdAt,
	}, nil
}

// CreateCategory builds a new Category and runs validate on it.
func CreateCategory(props CreateCategoryProps, validate Validator) (*Category, error) {
	c, err := NewCategory(CategoryProps{
		Name:        props.Name,
		Description: props.Description,
		IsActive:    props.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ChangeName sets the name, then validates the whole category. The new name
// is kept even when validation fails.
func (c *Category) ChangeName(name string, validate Validator) error {
	c.Name = name
	return validate(c)
}

// ChangeDescription sets the description (nil clears it), then validates.
func (c *Category) ChangeDescription(description *string, validate Validator) error {
	c.Description = description
	return validate(c)
}

func (c *Category) Activate()   { c.IsActive = true }
func (c *Category) Deactivate() { c.IsActive = false }

// EntityID returns the CategoryID.
func (c *Category) EntityID() domain.ValueObject { return c.CategoryID }

// ToJSON returns the category as a plain map with camelCase keys.
func (c *Category) ToJSON() map[string]any {
	var description any
	if c.Description != nil {
		description = *c.Description
	}
	return map[string]any{
		"categoryId":  c.CategoryID.String(),
		"createdAt":   c.CreatedAt,
		"description": description,
		"isActive":    c.IsActive,
		"name":        c.Name,
	}
}

// Clone returns a deep copy of c.
func (c *Category) Clone() *Category {
	cp := *c
	if c.Description != nil {
		d := *c.Description
		cp.Description = &d
	}
	return &cp
}
