// Package repository defines the persistence ports shared by every bounded
// context: plain CRUD, the searchable extension, and the query/result values
// that travel through Search.
package repository

import (
	"context"

	"github.com/ghuser/catalog/pkg/domain"
)

// Repository is the CRUD port for one entity type. The domain layer owns this
// interface; infrastructure implements it.
type Repository[E domain.Entity, ID domain.ValueObject] interface {
	// Save appends entity. No uniqueness policy is applied at this layer.
	Save(ctx context.Context, entity E) error
	SaveBatch(ctx context.Context, entities []E) error

	// GetByID returns the first entity whose identity equals id.
	// A miss is reported through ok=false, never through err.
	GetByID(ctx context.Context, id ID) (entity E, ok bool, err error)

	List(ctx context.Context) ([]E, error)

	// Update replaces the stored entity that shares entity's identity.
	// Returns a *domain.NotFoundError when there is none.
	Update(ctx context.Context, entity E) error

	// Delete removes every entity with the given identity.
	// Returns a *domain.NotFoundError when there is none.
	Delete(ctx context.Context, id ID) error

	// EntityType names the managed entity type for error messages.
	EntityType() string
}

// SearchableRepository adds filtered, sorted, paginated lookups.
type SearchableRepository[E domain.Entity, ID domain.ValueObject] interface {
	Repository[E, ID]

	// SortableFields is the whitelist of field names Search may sort by.
	SortableFields() []string

	Search(ctx context.Context, params SearchParams) (SearchResult[E], error)
}
