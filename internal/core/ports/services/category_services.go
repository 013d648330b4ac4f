package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// CategorySvcFacade exposes the read-only category taxonomy. The taxonomy is
// seeded by migration; there are no write operations.
type CategorySvcFacade interface {
	ListTaxonomy(ctx context.Context) ([]domain.CategoryTaxonomy, error)
}
