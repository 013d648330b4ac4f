package repositories

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// ReportingRepository serves read-only diagnostic views over the registry.
type ReportingRepository interface {
	// ListDocumentDigests returns one digest per document for the company,
	// ordered year desc, month desc, created_at desc.
	ListDocumentDigests(ctx context.Context, companyID string) ([]domain.DocumentDigest, error)
}
