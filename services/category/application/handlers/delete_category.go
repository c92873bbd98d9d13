package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/errhttp"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// DeleteCategoryHandler handles DELETE /categories/{id} requests.
type DeleteCategoryHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCategoryHandler returns a DeleteCategoryHandler backed by the given services.
func NewDeleteCategoryHandler(svc *appsvcs.Services) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{svc: svc}
}

// Execute removes the category and responds 204.
func (h *DeleteCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Category.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
