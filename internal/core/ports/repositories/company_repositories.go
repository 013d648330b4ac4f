package repositories

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// CompanyRepository persists client companies.
type CompanyRepository interface {
	// SaveCompany inserts a new company. Returns apperrors.ErrDuplicate when
	// name or slug already exists.
	SaveCompany(ctx context.Context, company domain.Company) error

	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
}
