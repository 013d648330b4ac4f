package repositories

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// DocumentFilter narrows document listings. CompanyID is required; Status
// is optional.
type DocumentFilter struct {
	CompanyID string
	Status    *domain.ProcessingStatus
}

// DocumentRepository persists AccountingDocument records.
type DocumentRepository interface {
	// SaveDocument inserts a new document record.
	SaveDocument(ctx context.Context, doc domain.AccountingDocument) error

	// FindDocumentByID returns apperrors.ErrNotFound when the id is unknown.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.AccountingDocument, error)

	// ListDocuments returns documents ordered year desc, month desc,
	// created_at desc (most recent fiscal period first).
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]domain.AccountingDocument, error)

	// UpdateStatus sets the processing status and error message. Transition
	// legality is the service's concern, not the repository's.
	UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, updatedBy string) error

	// SaveAnalysisResult stores the analysis result together with the final
	// status of the run, in one statement.
	SaveAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, updatedBy string) error

	// ClaimProcessing moves the document into PROCESSING iff its current
	// status is one of from, as a single compare-and-set. Returns
	// apperrors.ErrConflict when the guard does not match, so concurrent
	// re-dispatch for the same document id is serialized.
	ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, updatedBy string) error

	// DeleteDocument removes the record. Returns apperrors.ErrNotFound when
	// already gone.
	DeleteDocument(ctx context.Context, documentID string) error
}
