package repositories

import (
	"github.com/ghuser/catalog/pkg/domain"
	"github.com/ghuser/catalog/pkg/repository"
	"github.com/ghuser/catalog/services/category/domain/models"
)

// CategoryRepository is the persistence interface for the Category aggregate.
// The domain layer owns this interface; infrastructure implements it.
type CategoryRepository = repository.SearchableRepository[*models.Category, domain.Uuid]
