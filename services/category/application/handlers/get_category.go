package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// GetCategoryHandler handles GET /categories/{id} requests.
type GetCategoryHandler struct {
	svc *appsvcs.Services
}

// NewGetCategoryHandler returns a GetCategoryHandler backed by the given services.
func NewGetCategoryHandler(svc *appsvcs.Services) *GetCategoryHandler {
	return &GetCategoryHandler{svc: svc}
}

// Execute responds with the category, 400 for a malformed id, 404 when unknown.
func (h *GetCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Category.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.ToJSON())
}
