package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the shared kernel. Use errors.Is() to check these.
var (
	// ErrNotFound indicates no stored entity matched the requested identity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidUuid indicates a string is not a canonical v4 UUID.
	ErrInvalidUuid = errors.New("invalid uuid")

	// ErrEntityValidation indicates an entity failed its field validation rules.
	ErrEntityValidation = errors.New("validation error")
)

// NotFoundError carries the identities that were looked up and the type of
// entity that was expected. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	IDs        []ValueObject
	EntityType string
}

// NewNotFoundError builds a NotFoundError for one or more identities.
func NewNotFoundError(entityType string, ids ...ValueObject) *NotFoundError {
	return &NotFoundError{IDs: ids, EntityType: entityType}
}

func (e *NotFoundError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s not found with %s", e.EntityType, strings.Join(parts, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EntityValidationError collects the messages of every failed rule, keyed
// by field name. It matches ErrEntityValidation under errors.Is.
type EntityValidationError struct {
	Errors map[string][]string
}

// NewEntityValidationError wraps per-field messages.
func NewEntityValidationError(fields map[string][]string) *EntityValidationError {
	return &EntityValidationError{Errors: fields}
}

func (e *EntityValidationError) Error() string {
	return ErrEntityValidation.Error()
}

func (e *EntityValidationError) Is(target error) bool {
	return target == ErrEntityValidation
}
