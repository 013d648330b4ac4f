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
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// DocumentService is the document registry. Every status change funnels
// through here so the transition table is enforced in one place.
type DocumentService struct {
	documentRepo portsrepo.DocumentRepository
	companyRepo  portsrepo.CompanyRepository
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(dr portsrepo.DocumentRepository, cr portsrepo.CompanyRepository) portssvc.DocumentSvcFacade {
	return &DocumentService{
		documentRepo: dr,
		companyRepo:  cr,
	}
}

// Ensure DocumentService implements the portssvc.DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*DocumentService)(nil)

// CreateDocument validates invariants and persists the record.
func (s *DocumentService) CreateDocument(ctx context.Context, doc domain.AccountingDocument) (*domain.AccountingDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if doc.Month < 1 || doc.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, doc.Month)
	}
	if doc.Year < 2000 || doc.Year > 2100 {
		return nil, fmt.Errorf("%w: year %d is out of range", apperrors.ErrValidation, doc.Year)
	}
	if !doc.HasValidStorage() {
		return nil, fmt.Errorf("%w: storage handle does not match storage type %s", apperrors.ErrValidation, doc.StorageType)
	}
	switch doc.DocumentType {
	case domain.DocumentTypeStatement, domain.DocumentTypeReceipt, domain.DocumentTypeOther:
	default:
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, doc.DocumentType)
	}
	if doc.ProcessingStatus != domain.StatusPending && doc.ProcessingStatus != domain.StatusUploaded {
		return nil, fmt.Errorf("%w: new documents start in PENDING or UPLOADED, got %s", apperrors.ErrValidation, doc.ProcessingStatus)
	}

	if _, err := s.companyRepo.FindCompanyByID(ctx, doc.CompanyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: company %s not found", apperrors.ErrValidation, doc.CompanyID)
		}
		logger.Error("Failed to check company existence", slog.String("error", err.Error()), slog.String("company_id", doc.CompanyID))
		return nil, fmt.Errorf("failed to validate company: %w", err)
	}

	now := time.Now()
	if doc.DocumentID == "" {
		doc.DocumentID = uuid.NewString()
	}
	doc.ErrorMessage = ""
	doc.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     doc.UploadedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: doc.UploadedBy,
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		logger.Error("Failed to save document", slog.String("error", err.Error()), slog.String("document_id", doc.DocumentID))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	logger.Info("Document record created",
		slog.String("document_id", doc.DocumentID),
		slog.String("company_id", doc.CompanyID),
		slog.String("storage_type", string(doc.StorageType)))
	return &doc, nil
}

// GetDocument retrieves a document by id.
func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*domain.AccountingDocument, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}

// ListDocuments lists a company's documents, optionally narrowed by status.
func (s *DocumentService) ListDocuments(ctx context.Context, companyID string, status *domain.ProcessingStatus) ([]domain.AccountingDocument, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}
	docs, err := s.documentRepo.ListDocuments(ctx, portsrepo.DocumentFilter{CompanyID: companyID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for company %s: %w", companyID, err)
	}
	return docs, nil
}

// UpdateStatus applies a regular state machine transition. Transitions into
// FAILED require a non-empty error message; all others clear it.
func (s *DocumentService) UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load document %s: %w", documentID, err)
	}

	if !doc.ProcessingStatus.CanTransitionTo(status) {
		return fmt.Errorf("%w: illegal transition %s -> %s for document %s", apperrors.ErrValidation, doc.ProcessingStatus, status, documentID)
	}
	if status == domain.StatusFailed && errorMessage == "" {
		return fmt.Errorf("%w: transition to FAILED requires an error message", apperrors.ErrValidation)
	}
	if status != domain.StatusFailed {
		errorMessage = ""
	}

	if err := s.documentRepo.UpdateStatus(ctx, documentID, status, errorMessage, actor); err != nil {
		logger.Error("Failed to update document status", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return fmt.Errorf("failed to update status of document %s: %w", documentID, err)
	}

	logger.Info("Document status updated",
		slog.String("document_id", documentID),
		slog.String("from", string(doc.ProcessingStatus)),
		slog.String("to", string(status)))
	return nil
}

// AttachAnalysisResult stores the analysis outcome together with the run's
// final status in one write.
func (s *DocumentService) AttachAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if status != domain.StatusCompleted && status != domain.StatusFailed {
		return fmt.Errorf("%w: analysis results close with COMPLETED or FAILED, got %s", apperrors.ErrValidation, status)
	}
	if status == domain.StatusFailed && errorMessage == "" {
		return fmt.Errorf("%w: transition to FAILED requires an error message", apperrors.ErrValidation)
	}
	if status == domain.StatusCompleted {
		errorMessage = ""
	}

	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load document %s: %w", documentID, err)
	}
	if !doc.ProcessingStatus.CanTransitionTo(status) {
		return fmt.Errorf("%w: illegal transition %s -> %s for document %s", apperrors.ErrValidation, doc.ProcessingStatus, status, documentID)
	}

	if err := s.documentRepo.SaveAnalysisResult(ctx, documentID, result, status, errorMessage, actor); err != nil {
		logger.Error("Failed to save analysis result", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return fmt.Errorf("failed to attach analysis result to document %s: %w", documentID, err)
	}

	logger.Info("Analysis result attached",
		slog.String("document_id", documentID),
		slog.String("status", string(status)),
		slog.Bool("parse_error", result.Failed()))
	return nil
}

// ClaimProcessing is the status-guarded compare-and-set that serializes
// dispatch per document id. The repository performs the CAS; a lost race
// surfaces as apperrors.ErrConflict.
func (s *DocumentService) ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, actor string) error {
	if len(from) == 0 {
		return fmt.Errorf("%w: claim requires at least one source status", apperrors.ErrValidation)
	}
	for _, f := range from {
		if !f.CanTransitionTo(domain.StatusProcessing) && f != domain.StatusFailed {
			return fmt.Errorf("%w: cannot claim processing from %s", apperrors.ErrValidation, f)
		}
	}
	if err := s.documentRepo.ClaimProcessing(ctx, documentID, from, actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("failed to claim document %s for processing: %w", documentID, err)
	}
	return nil
}

// DeleteRecord removes the registry record only. Blob cleanup is the
// lifecycle orchestrator's concern.
func (s *DocumentService) DeleteRecord(ctx context.Context, documentID string) error {
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	return nil
}
