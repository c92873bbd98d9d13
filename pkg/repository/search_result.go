package repository

import (
	"encoding/json"
	"slices"

	"github.com/ghuser/catalog/pkg/domain"
)

// SearchResultInput holds the values a SearchResult is built from.
type SearchResultInput[E domain.Entity] struct {
	CurrentPage int
	Items       []E
	Total       int
	PerPage     int
}

// SearchResult is one page of a search plus its pagination metadata.
// Total counts every match, not just the items on this page.
type SearchResult[E domain.Entity] struct {
	currentPage int
	items       []E
	total       int
	perPage     int
	lastPage    int
}

// NewSearchResult derives LastPage as ceil(Total / PerPage).
func NewSearchResult[E domain.Entity](in SearchResultInput[E]) SearchResult[E] {
	lastPage := 0
	if in.PerPage > 0 && in.Total > 0 {
		lastPage = (in.Total + in.PerPage - 1) / in.PerPage
	}
	return SearchResult[E]{
		currentPage: in.CurrentPage,
		items:       slices.Clone(in.Items),
		total:       in.Total,
		perPage:     in.PerPage,
		lastPage:    lastPage,
	}
}

func (r SearchResult[E]) CurrentPage() int { return r.currentPage }
func (r SearchResult[E]) Total() int       { return r.total }
func (r SearchResult[E]) PerPage() int     { return r.perPage }
func (r SearchResult[E]) LastPage() int    { return r.lastPage }

// Items returns a copy of the page's entities.
func (r SearchResult[E]) Items() []E { return slices.Clone(r.items) }

// ToJSON returns the result as a plain map. With applyToJSONOnEntity the
// items are rendered through their own ToJSON.
func (r SearchResult[E]) ToJSON(applyToJSONOnEntity bool) map[string]any {
	var items any = r.Items()
	if applyToJSONOnEntity {
		rendered := make([]map[string]any, len(r.items))
		for i, item := range r.items {
			rendered[i] = item.ToJSON()
		}
		items = rendered
	}
	return map[string]any{
		"currentPage": r.currentPage,
		"items":       items,
		"lastPage":    r.lastPage,
		"total":       r.total,
		"perPage":     r.perPage,
	}
}

func (r SearchResult[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToJSON(true))
}
