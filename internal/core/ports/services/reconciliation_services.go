package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
)

// ReconciliationSvcFacade maps extracted line items into canonical
// Transaction records and handles manual reconciliation.
type ReconciliationSvcFacade interface {
	// IngestTransactions persists the extracted items of a completed
	// analysis as unreconciled transactions. A malformed item is recorded
	// as an ItemError and skipped; it never aborts the batch. Documents
	// with a parse error never reach ingestion.
	IngestTransactions(ctx context.Context, doc domain.AccountingDocument, result domain.AnalysisResult, actor string) ([]domain.Transaction, []domain.ItemError, error)

	// ReconcileTransaction confirms or reassigns the category, stamping
	// reconciledAt/reconciledBy together. Latest write wins on
	// re-reconciliation.
	ReconcileTransaction(ctx context.Context, transactionID string, req dto.ReconcileTransactionRequest, actor string) (*domain.Transaction, error)

	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}
