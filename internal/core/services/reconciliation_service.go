package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/middleware"
)

// ReconciliationService maps extracted line items into canonical
// Transaction records and handles manual category reconciliation.
type ReconciliationService struct {
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(tr portsrepo.TransactionRepository, cr portsrepo.CategoryRepository) portssvc.ReconciliationSvcFacade {
	return &ReconciliationService{
		transactionRepo: tr,
		categoryRepo:    cr,
	}
}

// Ensure ReconciliationService implements the portssvc.ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*ReconciliationService)(nil)

// IngestTransactions persists the extracted items of a completed analysis
// as unreconciled transactions. A malformed item becomes an ItemError and
// is skipped; it never aborts the batch.
func (s *ReconciliationService) IngestTransactions(ctx context.Context, doc domain.AccountingDocument, result domain.AnalysisResult, actor string) ([]domain.Transaction, []domain.ItemError, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if result.Failed() {
		return nil, nil, fmt.Errorf("%w: %w: cannot ingest a parse-failed analysis result", apperrors.ErrValidation, apperrors.ErrAnalysisParse)
	}

	now := time.Now()
	txns := make([]domain.Transaction, 0, len(result.Transactions))
	var itemErrors []domain.ItemError

	for i, item := range result.Transactions {
		txn, reason := s.buildTransaction(ctx, doc, item, actor, now)
		if reason != "" {
			itemErrors = append(itemErrors, domain.ItemError{Index: i, Reason: reason})
			logger.Warn("Skipping malformed extracted item",
				slog.String("document_id", doc.DocumentID),
				slog.Int("index", i),
				slog.String("reason", reason))
			continue
		}
		txns = append(txns, txn)
	}

	if len(txns) > 0 {
		if err := s.transactionRepo.SaveTransactions(ctx, txns); err != nil {
			logger.Error("Failed to save extracted transactions", slog.String("error", err.Error()), slog.String("document_id", doc.DocumentID))
			return nil, itemErrors, fmt.Errorf("failed to save transactions for document %s: %w", doc.DocumentID, err)
		}
	}

	logger.Info("Transactions ingested",
		slog.String("document_id", doc.DocumentID),
		slog.Int("saved", len(txns)),
		slog.Int("skipped", len(itemErrors)))
	return txns, itemErrors, nil
}

// buildTransaction converts one extracted item. A non-empty reason marks
// the item malformed; category resolution failures are soft and just leave
// the transaction uncategorized.
func (s *ReconciliationService) buildTransaction(ctx context.Context, doc domain.AccountingDocument, item domain.ExtractedTransaction, actor string, now time.Time) (domain.Transaction, string) {
	txnDate, err := parseTxnDate(item.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Sprintf("unparseable date %q", item.Date)
	}
	if strings.TrimSpace(item.Description) == "" {
		return domain.Transaction{}, "empty description"
	}

	amount := item.Amount
	direction := domain.TransactionDirection(strings.ToUpper(strings.TrimSpace(item.Direction)))
	if amount.IsNegative() {
		// The sign carries the polarity when the model ignores the
		// positive-magnitude rule.
		amount = amount.Abs()
		if direction == "" {
			direction = domain.Debit
		}
	}
	if amount.IsZero() {
		return domain.Transaction{}, "zero amount"
	}
	if direction != domain.Debit && direction != domain.Credit {
		return domain.Transaction{}, fmt.Sprintf("unknown direction %q", item.Direction)
	}

	confidence := item.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		DocumentID:    doc.DocumentID,
		CompanyID:     doc.CompanyID,
		TxnDate:       txnDate,
		Description:   strings.TrimSpace(item.Description),
		Vendor:        vendorFromDescription(item.Description),
		Amount:        amount,
		Direction:     direction,
		CheckNo:       item.CheckNo,
		Balance:       item.Balance,
		Confidence:    &confidence,
		TaxDeductible: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if item.Category != "" {
		cat, err := s.categoryRepo.FindCategoryByName(ctx, item.Category)
		if err == nil {
			txn.CategoryID = cat.CategoryID
			if item.Subcategory != "" {
				sub, err := s.categoryRepo.FindSubcategoryByName(ctx, cat.CategoryID, item.Subcategory)
				if err == nil {
					txn.SubcategoryID = sub.SubcategoryID
				}
			}
		}
	}

	return txn, ""
}

// ReconcileTransaction confirms or reassigns the category, stamping
// reconciledAt/reconciledBy together. Latest write wins on
// re-reconciliation.
func (s *ReconciliationService) ReconcileTransaction(ctx context.Context, transactionID string, req dto.ReconcileTransactionRequest, actor string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category %s: %w", req.CategoryID, err)
	}

	if req.SubcategoryID != "" {
		sub, err := s.categoryRepo.FindSubcategoryByID(ctx, req.SubcategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: subcategory %s not found", apperrors.ErrValidation, req.SubcategoryID)
			}
			return nil, fmt.Errorf("failed to validate subcategory %s: %w", req.SubcategoryID, err)
		}
		if sub.CategoryID != category.CategoryID {
			return nil, fmt.Errorf("%w: subcategory %s does not belong under category %s", apperrors.ErrValidation, req.SubcategoryID, req.CategoryID)
		}
	}

	now := time.Now()
	confidence := 1.0

	txn.CategoryID = req.CategoryID
	txn.SubcategoryID = req.SubcategoryID
	txn.Confidence = &confidence
	txn.IsReconciled = true
	txn.ReconciledAt = &now
	txn.ReconciledBy = actor
	if req.Notes != "" {
		txn.Notes = req.Notes
	}
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actor

	if err := s.transactionRepo.UpdateReconciliation(ctx, *txn); err != nil {
		logger.Error("Failed to update reconciliation", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to reconcile transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction reconciled",
		slog.String("transaction_id", transactionID),
		slog.String("category_id", req.CategoryID),
		slog.String("reconciled_by", actor))
	return txn, nil
}

// GetTransaction retrieves a transaction by id.
func (s *ReconciliationService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions lists transactions narrowed by the filter. At least a
// company or a document scope is required.
func (s *ReconciliationService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if filter.CompanyID == "" && filter.DocumentID == "" {
		return nil, fmt.Errorf("%w: a company or document filter is required", apperrors.ErrValidation)
	}
	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// parseTxnDate accepts the date formats the model realistically emits.
func parseTxnDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", raw)
}

// vendorFromDescription derives a vendor label from the free-text
// description: the leading words before reference noise like numbers or
// separators.
func vendorFromDescription(description string) string {
	desc := strings.TrimSpace(description)
	if idx := strings.Index(desc, " - "); idx > 0 {
		desc = desc[:idx]
	}
	words := strings.Fields(desc)
	out := make([]string, 0, 4)
	for _, w := range words {
		if len(out) == 4 {
			break
		}
		if strings.IndexFunc(w, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 && len(out) > 0 {
			break
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
