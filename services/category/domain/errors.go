package domain

import "errors"

// Sentinel errors for the category domain. Use errors.Is() to check these.
// Lookups that miss are reported by the repository as *domain.NotFoundError
// from pkg/domain.
var (
	// ErrInvalidCategory indicates a category violates its field rules. It is
	// joined with the *domain.EntityValidationError that lists the fields.
	ErrInvalidCategory = errors.New("invalid category")
)
