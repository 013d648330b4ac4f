package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// CompanyService manages client companies.
type CompanyService struct {
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(cr portsrepo.CompanyRepository) portssvc.CompanySvcFacade {
	return &CompanyService{companyRepo: cr}
}

// Ensure CompanyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

// CreateCompany registers a new client company with sensible defaults.
func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	company := domain.Company{
		CompanyID:     uuid.NewString(),
		Name:          req.Name,
		LegalName:     req.LegalName,
		Slug:          req.Slug,
		TaxID:         req.TaxID,
		Currency:      req.Currency,
		FiscalYearEnd: req.FiscalYearEnd,
		Status:        domain.CompanyActive,
		Address: domain.Address{
			Street:     req.Street,
			City:       req.City,
			Province:   req.Province,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		},
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if company.Currency == "" {
		company.Currency = "PHP"
	}
	if company.FiscalYearEnd == 0 {
		company.FiscalYearEnd = 12
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: company name or slug already in use", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save company", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID), slog.String("slug", company.Slug))
	return &company, nil
}

// GetCompanyByID retrieves a company by id.
func (s *CompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company %s: %w", companyID, err)
	}
	return company, nil
}

// ListCompanies lists all client companies.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// UpdateCompanyStatus activates or deactivates a company.
func (s *CompanyService) UpdateCompanyStatus(ctx context.Context, companyID string, status domain.CompanyStatus, actor string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if status != domain.CompanyActive && status != domain.CompanyInactive {
		return nil, fmt.Errorf("%w: unknown company status %q", apperrors.ErrValidation, status)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load company %s: %w", companyID, err)
	}

	company.Status = status
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = actor

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		logger.Error("Failed to update company status", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to update company %s: %w", companyID, err)
	}

	logger.Info("Company status updated", slog.String("company_id", companyID), slog.String("status", string(status)))
	return company, nil
}
