// Package inmemory holds the process-local Category store.
package inmemory

import (
	"strings"

	"github.com/ghuser/catalog/pkg/domain"
	"github.com/ghuser/catalog/pkg/repository"
	shared "github.com/ghuser/catalog/pkg/repository/inmemory"
	"github.com/ghuser/catalog/services/category/domain/models"
	"github.com/ghuser/catalog/services/category/domain/repositories"
)

// Sortable category fields.
const (
	FieldCreatedAt = "createdAt"
	FieldName      = "name"
)

// CategoryRepository implements repositories.CategoryRepository over a slice.
// Not safe for concurrent use.
type CategoryRepository struct {
	*shared.SearchableRepository[*models.Category, domain.Uuid]
}

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository returns an empty repository. Searches filter on a
// case-insensitive substring of the name and, when no sort field is given,
// order by name descending.
func NewCategoryRepository() *CategoryRepository {
	repo, err := shared.NewSearchableRepository[*models.Category, domain.Uuid](models.EntityType, searchConfig())
	if err != nil {
		// searchConfig is static; a failure here is a programming error.
		panic(err)
	}
	return &CategoryRepository{SearchableRepository: repo}
}

func searchConfig() shared.SearchConfig[*models.Category] {
	return shared.SearchConfig[*models.Category]{
		SortableFields: []string{FieldCreatedAt, FieldName},
		Filter:         matchName,
		Field:          categoryField,
		DefaultSort:    &shared.SortSpec{Field: FieldName, Direction: repository.SortDesc},
	}
}

func matchName(c *models.Category, filter string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter))
}

func categoryField(field string, c *models.Category) any {
	switch field {
	case FieldCreatedAt:
		return c.CreatedAt
	case FieldName:
		return c.Name
	default:
		return nil
	}
}
