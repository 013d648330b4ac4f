package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// LifecycleConfig tunes the orchestrator's retry policy.
type LifecycleConfig struct {
	DefaultStorageType domain.StorageType
	MaxAttempts        int           // Dispatch attempts per analysis run
	AttemptTimeout     time.Duration // Budget for one model invocation
}

// DocumentLifecycleService coordinates blob storage, the registry, analysis
// and reconciliation across a document's life. Dispatch failures are
// retried up to MaxAttempts; parse failures never are, because resubmitting
// the same bytes reproduces the same malformed output.
type DocumentLifecycleService struct {
	documentSvc       portssvc.DocumentSvcFacade
	analysisSvc       portssvc.AnalysisSvcFacade
	reconciliationSvc portssvc.ReconciliationSvcFacade
	blobs             ports.BlobStoreProvider
	cfg               LifecycleConfig
}

// NewDocumentLifecycleService creates a new DocumentLifecycleService.
func NewDocumentLifecycleService(ds portssvc.DocumentSvcFacade, as portssvc.AnalysisSvcFacade, rs portssvc.ReconciliationSvcFacade, blobs ports.BlobStoreProvider, cfg LifecycleConfig) portssvc.DocumentLifecycleSvcFacade {
	if cfg.DefaultStorageType == "" {
		cfg.DefaultStorageType = domain.StorageInternalChunked
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 2 * time.Minute
	}
	return &DocumentLifecycleService{
		documentSvc:       ds,
		analysisSvc:       as,
		reconciliationSvc: rs,
		blobs:             blobs,
		cfg:               cfg,
	}
}

// Ensure DocumentLifecycleService implements the portssvc.DocumentLifecycleSvcFacade interface
var _ portssvc.DocumentLifecycleSvcFacade = (*DocumentLifecycleService)(nil)

// UploadDocument stores the bytes, creates the registry record and runs
// analysis synchronously. The returned document reflects the final status
// of the run.
func (s *DocumentLifecycleService) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, actor string) (*domain.AccountingDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Content) == 0 {
		return nil, fmt.Errorf("%w: uploaded file is empty", apperrors.ErrValidation)
	}

	storageType := s.cfg.DefaultStorageType
	if req.StorageType != "" {
		storageType = domain.StorageType(req.StorageType)
	}
	store, err := s.blobs.For(storageType)
	if err != nil {
		return nil, err
	}

	handle, err := store.Put(ctx, req.Content, ports.BlobMetadata{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		logger.Error("Failed to store document bytes", slog.String("error", err.Error()), slog.String("storage_type", string(storageType)))
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := domain.AccountingDocument{
		CompanyID:        req.CompanyID,
		Month:            req.Month,
		Year:             req.Year,
		DocumentType:     domain.DocumentType(req.DocumentType),
		FileName:         req.FileName,
		ContentType:      req.ContentType,
		ProcessingStatus: domain.StatusUploaded,
		StorageType:      storageType,
		UploadedBy:       actor,
	}
	switch storageType {
	case domain.StorageInternalChunked:
		doc.ChunkFileID = handle
	case domain.StorageExternalObject:
		doc.ObjectPath = handle
	}

	created, err := s.documentSvc.CreateDocument(ctx, doc)
	if err != nil {
		// The blob is already written; clean it up so a rejected upload
		// leaves nothing behind.
		if delErr := store.Delete(ctx, handle); delErr != nil && !errors.Is(delErr, apperrors.ErrNotFound) {
			logger.Warn("Failed to clean up blob of rejected upload", slog.String("error", delErr.Error()), slog.String("handle", handle))
		}
		return nil, err
	}

	if err := s.documentSvc.UpdateStatus(ctx, created.DocumentID, domain.StatusStored, "", actor); err != nil {
		return nil, err
	}

	return s.ProcessDocument(ctx, created.DocumentID, actor)
}

// ProcessDocument claims the document out of UPLOADED/STORED and runs
// analysis plus ingestion.
func (s *DocumentLifecycleService) ProcessDocument(ctx context.Context, documentID string, actor string) (*domain.AccountingDocument, error) {
	from := []domain.ProcessingStatus{domain.StatusUploaded, domain.StatusStored}
	if err := s.documentSvc.ClaimProcessing(ctx, documentID, from, actor); err != nil {
		return nil, err
	}
	return s.runClaimed(ctx, documentID, actor)
}

// ReprocessDocument is the explicit re-dispatch out of FAILED.
func (s *DocumentLifecycleService) ReprocessDocument(ctx context.Context, documentID string, actor string) (*domain.AccountingDocument, error) {
	from := []domain.ProcessingStatus{domain.StatusFailed}
	if err := s.documentSvc.ClaimProcessing(ctx, documentID, from, actor); err != nil {
		return nil, err
	}
	return s.runClaimed(ctx, documentID, actor)
}

// runClaimed performs one analysis run for a document already claimed into
// PROCESSING. Failures close the run as FAILED on the record; only
// infrastructure errors on the registry itself come back as errors.
func (s *DocumentLifecycleService) runClaimed(ctx context.Context, documentID string, actor string) (*domain.AccountingDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.documentSvc.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	content, err := s.fetchContent(ctx, *doc)
	if err != nil {
		logger.Error("Failed to fetch document bytes for analysis", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return s.failRun(ctx, documentID, fmt.Sprintf("failed to read stored document: %v", err), actor)
	}

	result, err := s.analyzeWithRetry(ctx, content, doc.ContentType, doc.DocumentType)
	if err != nil {
		return s.failRun(ctx, documentID, fmt.Sprintf("analysis dispatch failed after %d attempts: %v", s.cfg.MaxAttempts, err), actor)
	}

	if result.Failed() {
		// Parse failures are permanent for these bytes; store the result
		// with the raw response so the failure stays diagnosable.
		if err := s.documentSvc.AttachAnalysisResult(ctx, documentID, *result, domain.StatusFailed, result.ParseError, actor); err != nil {
			return nil, err
		}
		return s.documentSvc.GetDocument(ctx, documentID)
	}

	_, itemErrors, err := s.reconciliationSvc.IngestTransactions(ctx, *doc, *result, actor)
	if err != nil {
		if attachErr := s.documentSvc.AttachAnalysisResult(ctx, documentID, *result, domain.StatusFailed, fmt.Sprintf("failed to persist extracted transactions: %v", err), actor); attachErr != nil {
			return nil, attachErr
		}
		return s.documentSvc.GetDocument(ctx, documentID)
	}
	if len(itemErrors) > 0 {
		logger.Warn("Some extracted items were skipped",
			slog.String("document_id", documentID),
			slog.Int("skipped", len(itemErrors)))
	}

	if err := s.documentSvc.AttachAnalysisResult(ctx, documentID, *result, domain.StatusCompleted, "", actor); err != nil {
		return nil, err
	}
	return s.documentSvc.GetDocument(ctx, documentID)
}

// analyzeWithRetry retries dispatch failures with a per-attempt timeout.
// Parse failures come back as results, not errors, so they pass through on
// the first attempt.
func (s *DocumentLifecycleService) analyzeWithRetry(ctx context.Context, content []byte, contentType string, docType domain.DocumentType) (*domain.AnalysisResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		result, err := s.analysisSvc.Analyze(attemptCtx, content, contentType, docType)
		cancel()

		if err == nil {
			return result, nil
		}
		lastErr = err
		if !errors.Is(err, apperrors.ErrAnalysisDispatch) {
			return nil, err
		}
		logger.Warn("Analysis dispatch attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", s.cfg.MaxAttempts),
			slog.String("error", err.Error()))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

// failRun closes the current run as FAILED and returns the updated record.
func (s *DocumentLifecycleService) failRun(ctx context.Context, documentID string, message string, actor string) (*domain.AccountingDocument, error) {
	if err := s.documentSvc.UpdateStatus(ctx, documentID, domain.StatusFailed, message, actor); err != nil {
		return nil, err
	}
	return s.documentSvc.GetDocument(ctx, documentID)
}

// DeleteDocument attempts blob deletion best effort and always deletes the
// registry record. A dangling blob is a warning; a dangling record is not
// acceptable.
func (s *DocumentLifecycleService) DeleteDocument(ctx context.Context, documentID string, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.documentSvc.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if handle := doc.StorageHandle(); handle != "" {
		store, err := s.blobs.For(doc.StorageType)
		if err != nil {
			logger.Warn("Cannot resolve blob backend for delete", slog.String("error", err.Error()), slog.String("document_id", documentID))
		} else if err := store.Delete(ctx, handle); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to delete document blob",
				slog.String("error", err.Error()),
				slog.String("document_id", documentID),
				slog.String("handle", handle))
		}
	}

	if err := s.documentSvc.DeleteRecord(ctx, documentID); err != nil {
		return err
	}

	logger.Info("Document deleted", slog.String("document_id", documentID), slog.String("deleted_by", actor))
	return nil
}

// GetDocumentContent streams the stored bytes back out.
func (s *DocumentLifecycleService) GetDocumentContent(ctx context.Context, documentID string) ([]byte, string, error) {
	doc, err := s.documentSvc.GetDocument(ctx, documentID)
	if err != nil {
		return nil, "", err
	}
	content, err := s.fetchContent(ctx, *doc)
	if err != nil {
		return nil, "", err
	}
	return content, doc.ContentType, nil
}

func (s *DocumentLifecycleService) fetchContent(ctx context.Context, doc domain.AccountingDocument) ([]byte, error) {
	store, err := s.blobs.For(doc.StorageType)
	if err != nil {
		return nil, err
	}
	content, err := store.Get(ctx, doc.StorageHandle())
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", doc.StorageHandle(), err)
	}
	return content, nil
}
