package repositories

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// CategoryRepository reads the category taxonomy. The taxonomy is seeded by
// migration and managed out of band; reconciliation only resolves against it.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error)
	FindSubcategoryByName(ctx context.Context, categoryID string, name string) (*domain.Subcategory, error)
}
