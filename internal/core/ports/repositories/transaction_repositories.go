package repositories

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	CompanyID    string
	DocumentID   string
	IsReconciled *bool
}

// TransactionRepository persists canonical Transaction records.
type TransactionRepository interface {
	// SaveTransactions inserts the batch in one round trip.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions ordered by txn_date asc,
	// created_at asc.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// UpdateReconciliation persists category, subcategory, confidence and
	// the reconciliation stamp of a single transaction.
	UpdateReconciliation(ctx context.Context, txn domain.Transaction) error
}
