package handlers

import (
	"net/http"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// CreateCategoryRequest is the request body for POST /categories.
// Domain rules are applied again by the service; the tags here reject
// malformed bodies before they reach it.
type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PostCategoryHandler handles POST /categories requests.
type PostCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given services.
func NewPostCategoryHandler(svc *appsvcs.Services) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc}
}

// Execute creates a new category and responds 201 with its JSON form.
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	c, err := h.svc.Category.Create(r.Context(), appsvcs.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, c.ToJSON())
}
