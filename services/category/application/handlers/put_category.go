package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// UpdateCategoryRequest is the request body for PUT /categories/{id}.
// Omitted fields are left unchanged. An empty description clears it.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PutCategoryHandler handles PUT /categories/{id} requests.
type PutCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPutCategoryHandler returns a PutCategoryHandler backed by the given services.
func NewPutCategoryHandler(svc *appsvcs.Services) *PutCategoryHandler {
	return &PutCategoryHandler{svc: svc}
}

// Execute applies the update and responds with the new state.
func (h *PutCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateCategoryRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.UpdateCategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Description != nil {
		if *req.Description == "" {
			in.ClearDescription = true
		} else {
			in.Description = req.Description
		}
	}

	c, err := h.svc.Category.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.ToJSON())
}
