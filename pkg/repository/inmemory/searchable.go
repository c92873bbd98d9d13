package inmemory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/ghuser/catalog/pkg/domain"
	"github.com/ghuser/catalog/pkg/repository"
)

// ErrInvalidSearchConfig is returned by NewSearchableRepository when the
// config cannot serve every search it would accept.
var ErrInvalidSearchConfig = errors.New("invalid search config")

// FilterFunc reports whether entity matches a non-empty filter term.
type FilterFunc[E any] func(entity E, filter string) bool

// FieldAccessor returns the value of the named field used as a sort key.
type FieldAccessor[E any] func(field string, entity E) any

// SortSpec is a field and direction pair.
type SortSpec struct {
	Field     string
	Direction repository.SortDirection
}

// SearchConfig holds the per-entity search strategy.
type SearchConfig[E domain.Entity] struct {
	// SortableFields is the whitelist of accepted sort keys.
	SortableFields []string

	// Filter is required.
	Filter FilterFunc[E]

	// Field is required when SortableFields is not empty.
	Field FieldAccessor[E]

	// DefaultSort applies when the params carry no sort field. It must name
	// a sortable field.
	DefaultSort *SortSpec
}

// SearchableRepository adds filter, sort and pagination over a BaseRepository.
type SearchableRepository[E domain.Entity, ID domain.ValueObject] struct {
	*BaseRepository[E, ID]
	cfg SearchConfig[E]
}

// NewSearchableRepository returns an empty searchable repository.
func NewSearchableRepository[E domain.Entity, ID domain.ValueObject](entityType string, cfg SearchConfig[E]) (*SearchableRepository[E, ID], error) {
	if cfg.Filter == nil {
		return nil, fmt.Errorf("%w: filter is required", ErrInvalidSearchConfig)
	}
	if len(cfg.SortableFields) > 0 && cfg.Field == nil {
		return nil, fmt.Errorf("%w: field accessor is required for sortable fields", ErrInvalidSearchConfig)
	}
	if cfg.DefaultSort != nil && !slices.Contains(cfg.SortableFields, cfg.DefaultSort.Field) {
		return nil, fmt.Errorf("%w: default sort field %q is not sortable", ErrInvalidSearchConfig, cfg.DefaultSort.Field)
	}
	cfg.SortableFields = slices.Clone(cfg.SortableFields)
	return &SearchableRepository[E, ID]{
		BaseRepository: NewBaseRepository[E, ID](entityType),
		cfg:            cfg,
	}, nil
}

// SortableFields returns a copy of the sort whitelist.
func (r *SearchableRepository[E, ID]) SortableFields() []string {
	return slices.Clone(r.cfg.SortableFields)
}

// Search filters every stored entity, sorts the matches and returns the
// requested page. Total counts all matches.
func (r *SearchableRepository[E, ID]) Search(ctx context.Context, params repository.SearchParams) (repository.SearchResult[E], error) {
	if err := ctx.Err(); err != nil {
		return repository.SearchResult[E]{}, err
	}

	filtered := r.FilterItems(r.snapshot(), params.Filter())

	sortBy, dir := params.SortBy(), params.SortDirection()
	if !params.HasSortBy() && r.cfg.DefaultSort != nil {
		sortBy, dir = r.cfg.DefaultSort.Field, r.cfg.DefaultSort.Direction
	}
	sorted := r.SortItems(filtered, sortBy, dir)

	return repository.NewSearchResult(repository.SearchResultInput[E]{
		CurrentPage: params.Page(),
		Items:       r.Paginate(sorted, params.Page(), params.PerPage()),
		Total:       len(filtered),
		PerPage:     params.PerPage(),
	}), nil
}

// FilterItems returns items unchanged when filter is empty, otherwise the
// matching subsequence.
func (r *SearchableRepository[E, ID]) FilterItems(items []E, filter string) []E {
	if filter == "" {
		return items
	}
	matched := make([]E, 0, len(items))
	for _, item := range items {
		if r.cfg.Filter(item, filter) {
			matched = append(matched, item)
		}
	}
	return matched
}

// SortItems sorts by a whitelisted field using the configured accessor.
func (r *SearchableRepository[E, ID]) SortItems(items []E, sortBy string, dir repository.SortDirection) []E {
	return r.SortItemsWith(items, sortBy, dir, r.cfg.Field)
}

// SortItemsWith is SortItems with a caller supplied accessor, for derived
// sort keys. A nil field falls back to the configured accessor.
//
// When sortBy is empty or not whitelisted, items is returned as is. Otherwise
// a sorted copy is returned; equal keys keep their input order.
func (r *SearchableRepository[E, ID]) SortItemsWith(items []E, sortBy string, dir repository.SortDirection, field FieldAccessor[E]) []E {
	if sortBy == "" || !slices.Contains(r.cfg.SortableFields, sortBy) {
		return items
	}
	if field == nil {
		field = r.cfg.Field
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b E) int {
		c := compareValues(field(sortBy, a), field(sortBy, b))
		if dir == repository.SortAsc {
			return c
		}
		return -c
	})
	return sorted
}

// Paginate returns the page-th window of perPage items. Pages past the end
// yield an empty slice.
func (r *SearchableRepository[E, ID]) Paginate(items []E, page, perPage int) []E {
	if page < 1 || perPage < 1 || page-1 > len(items)/perPage {
		return []E{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []E{}
	}
	end := len(items)
	if perPage < end-start {
		end = start + perPage
	}
	return slices.Clone(items[start:end])
}

// compareValues orders two sort keys: numbers numerically, strings
// lexicographically, times chronologically, false before true. Stringers
// compare by String and anything else by its fmt.Sprint form. nil sorts
// first.
func compareValues(a, b any) int {
	a, b = indirect(a), indirect(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return compareBool(va.Bool(), vb.Bool())
	}

	if sa, ok := a.(fmt.Stringer); ok {
		if sb, ok := b.(fmt.Stringer); ok {
			return cmp.Compare(sa.String(), sb.String())
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
