package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// DocumentSvcFacade is the document registry: record-of-truth CRUD plus the
// processing-status state machine. All status changes funnel through here
// so illegal transitions are rejected in one place.
type DocumentSvcFacade interface {
	// CreateDocument validates invariants (storage handle consistency,
	// reporting period) and persists the record.
	CreateDocument(ctx context.Context, doc domain.AccountingDocument) (*domain.AccountingDocument, error)

	GetDocument(ctx context.Context, documentID string) (*domain.AccountingDocument, error)

	// ListDocuments orders by year desc, month desc, createdAt desc.
	ListDocuments(ctx context.Context, companyID string, status *domain.ProcessingStatus) ([]domain.AccountingDocument, error)

	// UpdateStatus applies a regular state machine transition. Transitions
	// into FAILED require a non-empty error message; all others clear it.
	UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, actor string) error

	// AttachAnalysisResult stores the analysis outcome with the run's final
	// status (COMPLETED, or FAILED with the parse error as message).
	AttachAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, actor string) error

	// ClaimProcessing is the status-guarded compare-and-set that serializes
	// dispatch per document id.
	ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, actor string) error

	// DeleteRecord removes the registry record only; blob cleanup is the
	// lifecycle orchestrator's concern.
	DeleteRecord(ctx context.Context, documentID string) error
}
