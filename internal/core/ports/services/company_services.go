package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
)

// CompanySvcFacade manages client companies.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	UpdateCompanyStatus(ctx context.Context, companyID string, status domain.CompanyStatus, actor string) (*domain.Company, error)
}
