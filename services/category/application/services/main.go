package services

import (
	"fmt"

	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/pkg/cache"
	"github.com/ghuser/catalog/pkg/telemetry"
	"github.com/ghuser/catalog/services/category/infrastructure/persistence/inmemory"
)

const meterScope = "github.com/ghuser/catalog/services/category"

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Category *CategoryService
}

// New wires all category application services with infrastructure from the Application container.
func New(a *app.Application) (*Services, error) {
	metrics, err := telemetry.NewOperationMetrics(meterScope, "category")
	if err != nil {
		return nil, fmt.Errorf("category metrics: %w", err)
	}

	var bus Publisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	return &Services{
		Category: NewCategoryService(
			inmemory.NewCategoryRepository(),
			cache.NewCategoryCache(a.Redis),
			bus,
			a.Logger,
			metrics,
		),
	}, nil
}
