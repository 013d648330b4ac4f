package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
)

// ReportingService serves the diagnostic view: per-document digests plus
// aggregate counts, so silent zero-value or malformed outcomes are
// discoverable without opening each record.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	companyRepo   portsrepo.CompanyRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(rr portsrepo.ReportingRepository, cr portsrepo.CompanyRepository) portssvc.ReportingSvcFacade {
	return &ReportingService{
		reportingRepo: rr,
		companyRepo:   cr,
	}
}

// Ensure ReportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// CompanyDocumentsReport assembles the diagnostic report for one company.
func (s *ReportingService) CompanyDocumentsReport(ctx context.Context, companyID string) (*domain.CompanyDocumentsReport, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to validate company %s: %w", companyID, err)
	}

	digests, err := s.reportingRepo.ListDocumentDigests(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list document digests for company %s: %w", companyID, err)
	}

	return &domain.CompanyDocumentsReport{
		CompanyID: companyID,
		Documents: digests,
		Summary:   summarizeDigests(digests),
	}, nil
}

// summarizeDigests folds the per-document digests into aggregate counts.
func summarizeDigests(digests []domain.DocumentDigest) domain.DocumentSummary {
	var summary domain.DocumentSummary
	summary.Total = len(digests)
	for _, d := range digests {
		switch d.ProcessingStatus {
		case domain.StatusCompleted:
			summary.Completed++
		case domain.StatusFailed:
			summary.Failed++
		case domain.StatusStored:
			summary.Stored++
		}
		if d.HasPLData {
			summary.WithPLData++
		}
		if d.HasZeroPL {
			summary.WithZeroPL++
		}
		if d.TransactionCount > 0 {
			summary.WithTransactions++
		}
	}
	return summary
}
