package inmemory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/ghuser/catalog/pkg/domain"
	"github.com/ghuser/catalog/pkg/repository"
	"github.com/ghuser/catalog/services/category/domain/models"
)

// buildCategories returns n categories named "Category i", each created 100ms
// after the previous one.
func buildCategories(t *testing.T, n int) []*models.Category {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*models.Category, n)
	for i := range n {
		c, err := models.NewCategory(models.CategoryProps{
			Name:      fmt.Sprintf("Category %d", i),
			CreatedAt: base.Add(time.Duration(i) * 100 * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("new category: %v", err)
		}
		out[i] = c
	}
	return out
}

func TestCategoryRepository_EntityType(t *testing.T) {
	if got := NewCategoryRepository().EntityType(); got != "Category" {
		t.Fatalf("expected Category, got %q", got)
	}
}

func TestCategoryRepository_SortableFields(t *testing.T) {
	got := NewCategoryRepository().SortableFields()
	if !slices.Equal(got, []string{"createdAt", "name"}) {
		t.Fatalf("unexpected sortable fields: %v", got)
	}
}

func TestCategoryRepository_Filter(t *testing.T) {
	repo := NewCategoryRepository()
	items := buildCategories(t, 10)

	tests := []struct {
		name   string
		filter string
		want   []*models.Category
	}{
		{"empty filter returns everything", "", items},
		{"case-insensitive substring", "category 1", []*models.Category{items[1]}},
		{"upper case", "CATEGORY 9", []*models.Category{items[9]}},
		{"no match", "movie", []*models.Category{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.FilterItems(items, tt.filter)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("expected %d items, got %d", len(tt.want), len(got))
			}
		})
	}
}

func TestCategoryRepository_Search(t *testing.T) {
	ctx := context.Background()
	items := buildCategories(t, 10)

	repo := NewCategoryRepository()
	if err := repo.SaveBatch(ctx, items); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	byCreatedDesc := slices.Clone(items)
	slices.Reverse(byCreatedDesc)

	tests := []struct {
		name  string
		input repository.SearchInput
		want  []*models.Category
		total int
	}{
		{
			name:  "default sort is name desc",
			input: repository.SearchInput{},
			want:  byCreatedDesc,
			total: 10,
		},
		{
			name:  "name asc",
			input: repository.SearchInput{SortBy: "name", SortDirection: "asc"},
			want:  items,
			total: 10,
		},
		{
			name:  "createdAt desc",
			input: repository.SearchInput{SortBy: "createdAt", SortDirection: "desc"},
			want:  byCreatedDesc,
			total: 10,
		},
		{
			name:  "filter with pagination",
			input: repository.SearchInput{Filter: "category", Page: 2, PerPage: 3, SortBy: "name"},
			want:  items[3:6],
			total: 10,
		},
		{
			name:  "non-sortable field keeps insertion order",
			input: repository.SearchInput{SortBy: "isActive"},
			want:  items,
			total: 10,
		},
		{
			name:  "filter reduces total",
			input: repository.SearchInput{Filter: "category 1"},
			want:  []*models.Category{items[1]},
			total: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.Search(ctx, repository.NewSearchParams(tt.input))
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if result.Total() != tt.total {
				t.Fatalf("expected total %d, got %d", tt.total, result.Total())
			}
			got := result.Items()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d items, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("item %d: expected %q, got %q", i, tt.want[i].Name, got[i].Name)
				}
			}
		})
	}
}

func TestCategoryRepository_DeleteMissing(t *testing.T) {
	repo := NewCategoryRepository()
	id := domain.MustParseUuid("8d0b0c3e-8f6e-4d3a-9c5b-2f1e0a9b8c7d")

	err := repo.Delete(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	want := "Category not found with 8d0b0c3e-8f6e-4d3a-9c5b-2f1e0a9b8c7d"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
