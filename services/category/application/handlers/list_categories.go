package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/repository"
	appsvcs "github.com/ghuser/catalog/services/category/application/services"
)

// Query parameters accepted by GET /categories.
const (
	queryFilter  = "filter"
	queryPage    = "page"
	queryPerPage = "per_page"
	querySort    = "sort"
	querySortDir = "sort_dir"
)

// ListCategoriesHandler handles GET /categories requests.
type ListCategoriesHandler struct {
	svc *appsvcs.Services
}

// NewListCategoriesHandler returns a ListCategoriesHandler backed by the given services.
func NewListCategoriesHandler(svc *appsvcs.Services) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc}
}

// Execute searches categories. Invalid query values fall back to their
// defaults rather than failing the request.
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Category.Search(r.Context(), searchInput(r.URL.Query()))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result.ToJSON(true))
}

func searchInput(q url.Values) repository.SearchInput {
	return repository.SearchInput{
		Filter:        textValue(q, queryFilter),
		Page:          numberValue(q, queryPage),
		PerPage:       numberValue(q, queryPerPage),
		SortBy:        textValue(q, querySort),
		SortDirection: textValue(q, querySortDir),
	}
}

// textValue returns nil for an absent key so it stays unset.
func textValue(q url.Values, key string) any {
	if !q.Has(key) {
		return nil
	}
	return q.Get(key)
}

// numberValue wraps the raw value as a json.Number, which NewSearchParams
// accepts only when it parses as a positive integer.
func numberValue(q url.Values, key string) any {
	if !q.Has(key) {
		return nil
	}
	return json.Number(q.Get(key))
}
