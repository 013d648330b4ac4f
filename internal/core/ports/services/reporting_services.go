package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// ReportingSvcFacade serves the diagnostic read endpoint: per-document
// digests plus aggregate counts for a company.
type ReportingSvcFacade interface {
	CompanyDocumentsReport(ctx context.Context, companyID string) (*domain.CompanyDocumentsReport, error)
}
