package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/ghuser/catalog/pkg/domain"
)

// SortDirection is the ordering applied to the sort field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10

	maxSafeInteger = 1<<53 - 1
)

// SearchInput carries raw, untrusted query values. Any field may be nil or of
// an unexpected type; NewSearchParams normalizes them.
type SearchInput struct {
	Filter        any
	Page          any
	PerPage       any
	SortBy        any
	SortDirection any
}

// SearchParams is the normalized form of a SearchInput. An empty Filter or
// SortBy means "not set".
type SearchParams struct {
	filter        string
	page          int
	perPage       int
	sortBy        string
	sortDirection SortDirection
}

// NewSearchParams normalizes in:
//   - Filter/SortBy: nil and "" become unset, anything else its fmt.Sprint form.
//   - Page/PerPage: only integer-valued numbers > 0 are kept, otherwise 1 and 10.
//   - SortDirection: case-insensitive "asc" or "desc", otherwise "asc".
func NewSearchParams(in SearchInput) SearchParams {
	return SearchParams{
		filter:        normalizeText(in.Filter),
		page:          normalizePositiveInt(in.Page, DefaultPage),
		perPage:       normalizePositiveInt(in.PerPage, DefaultPerPage),
		sortBy:        normalizeText(in.SortBy),
		sortDirection: normalizeSortDirection(in.SortDirection),
	}
}

// DefaultSearchParams is equivalent to NewSearchParams(SearchInput{}).
func DefaultSearchParams() SearchParams {
	return NewSearchParams(SearchInput{})
}

func (p SearchParams) Filter() string               { return p.filter }
func (p SearchParams) HasFilter() bool              { return p.filter != "" }
func (p SearchParams) Page() int                    { return p.page }
func (p SearchParams) PerPage() int                 { return p.perPage }
func (p SearchParams) SortBy() string               { return p.sortBy }
func (p SearchParams) HasSortBy() bool              { return p.sortBy != "" }
func (p SearchParams) SortDirection() SortDirection { return p.sortDirection }

// Equals reports structural equality with another value object.
func (p SearchParams) Equals(other domain.ValueObject) bool {
	return domain.StructurallyEqual(p, other)
}

// deref follows pointers; a nil pointer yields nil.
func deref(v any) any {
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

func normalizeText(v any) string {
	v = deref(v)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func normalizePositiveInt(v any, def int) int {
	v = deref(v)
	if v == nil {
		return def
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return def
		}
		v = f
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n > 0 && n <= math.MaxInt {
			return int(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n > 0 && n <= math.MaxInt {
			return int(n)
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f > 0 && f == math.Trunc(f) && f <= maxSafeInteger {
			return int(f)
		}
	}
	return def
}

func normalizeSortDirection(v any) SortDirection {
	v = deref(v)
	if v == nil {
		return SortAsc
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return SortAsc
	}
	switch d := SortDirection(strings.ToLower(rv.String())); d {
	case SortAsc, SortDesc:
		return d
	default:
		return SortAsc
	}
}
