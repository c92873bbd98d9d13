package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/services/category/application/handlers"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// CategoryRoutes registers category endpoints on the provided chi router.
func CategoryRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", handlers.NewPostCategoryHandler(svcs).Execute)
		r.Get("/", handlers.NewListCategoriesHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetCategoryHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutCategoryHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteCategoryHandler(svcs).Execute)
	})
}
