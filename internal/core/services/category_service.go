package services

import (
	"context"
	"fmt"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
)

// CategoryService serves the read-only category taxonomy.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(cr portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &CategoryService{categoryRepo: cr}
}

// Ensure CategoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// ListTaxonomy returns every category with its subcategories.
func (s *CategoryService) ListTaxonomy(ctx context.Context) ([]domain.CategoryTaxonomy, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	taxonomy := make([]domain.CategoryTaxonomy, 0, len(categories))
	for _, cat := range categories {
		subs, err := s.categoryRepo.ListSubcategories(ctx, cat.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subcategories of %s: %w", cat.Name, err)
		}
		taxonomy = append(taxonomy, domain.CategoryTaxonomy{Category: cat, Subcategories: subs})
	}
	return taxonomy, nil
}
