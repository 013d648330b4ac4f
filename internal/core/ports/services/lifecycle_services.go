package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
)

// DocumentLifecycleSvcFacade coordinates blob storage, the document
// registry, analysis and reconciliation across a document's life. It owns
// the retry/no-retry policy per failure class.
type DocumentLifecycleSvcFacade interface {
	// UploadDocument stores the bytes, creates the registry record and
	// dispatches analysis. The returned document reflects the final status
	// of the run (COMPLETED or FAILED).
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, actor string) (*domain.AccountingDocument, error)

	// ProcessDocument claims the document out of UPLOADED/STORED and runs
	// analysis + ingestion. Dispatch failures are retried a bounded number
	// of times; parse failures are not.
	ProcessDocument(ctx context.Context, documentID string, actor string) (*domain.AccountingDocument, error)

	// ReprocessDocument is the explicit re-dispatch that re-enters
	// PROCESSING from FAILED.
	ReprocessDocument(ctx context.Context, documentID string, actor string) (*domain.AccountingDocument, error)

	// DeleteDocument attempts blob deletion (best effort, warnings only)
	// and always deletes the registry record.
	DeleteDocument(ctx context.Context, documentID string, actor string) error

	// GetDocumentContent streams the stored bytes back out.
	GetDocumentContent(ctx context.Context, documentID string) ([]byte, string, error)
}
