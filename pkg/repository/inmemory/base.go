// Package inmemory implements the repository ports over a plain slice.
// Repositories here take no locks: callers that share an instance across
// goroutines must serialize access themselves.
package inmemory

import (
	"context"
	"slices"

	"github.com/ghuser/catalog/pkg/domain"
)

// BaseRepository stores entities in insertion order.
type BaseRepository[E domain.Entity, ID domain.ValueObject] struct {
	items      []E
	entityType string
}

// NewBaseRepository returns an empty repository. entityType names the managed
// entity in NotFoundError messages.
func NewBaseRepository[E domain.Entity, ID domain.ValueObject](entityType string) *BaseRepository[E, ID] {
	return &BaseRepository[E, ID]{entityType: entityType}
}

// Save appends entity. Duplicate identities are accepted.
func (r *BaseRepository[E, ID]) Save(ctx context.Context, entity E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.items = append(r.items, entity)
	return nil
}

// SaveBatch appends entities in order.
func (r *BaseRepository[E, ID]) SaveBatch(ctx context.Context, entities []E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.items = append(r.items, entities...)
	return nil
}

// GetByID returns the first stored entity whose identity equals id.
func (r *BaseRepository[E, ID]) GetByID(ctx context.Context, id ID) (E, bool, error) {
	var zero E
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	i := r.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}
	return r.items[i], true, nil
}

// List returns a copy of the stored entities in insertion order.
func (r *BaseRepository[E, ID]) List(ctx context.Context) ([]E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.items), nil
}

// Update replaces the first stored entity sharing entity's identity,
// keeping its position.
func (r *BaseRepository[E, ID]) Update(ctx context.Context, entity E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i := r.indexOf(entity.EntityID())
	if i < 0 {
		return domain.NewNotFoundError(r.entityType, entity.EntityID())
	}
	r.items[i] = entity
	return nil
}

// Delete removes every stored entity whose identity equals id.
func (r *BaseRepository[E, ID]) Delete(ctx context.Context, id ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.indexOf(id) < 0 {
		return domain.NewNotFoundError(r.entityType, id)
	}
	r.items = slices.DeleteFunc(r.items, func(e E) bool {
		return e.EntityID().Equals(id)
	})
	return nil
}

func (r *BaseRepository[E, ID]) EntityType() string { return r.entityType }

// Len reports how many entities are stored.
func (r *BaseRepository[E, ID]) Len() int { return len(r.items) }

// snapshot exposes the backing slice to the searchable layer without copying.
func (r *BaseRepository[E, ID]) snapshot() []E { return r.items }

func (r *BaseRepository[E, ID]) indexOf(id domain.ValueObject) int {
	return slices.IndexFunc(r.items, func(e E) bool {
		return e.EntityID().Equals(id)
	})
}
