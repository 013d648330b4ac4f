package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/models"
	"github.com/pesobooks/bookkeeping_app/internal/utils/mapping"
)

const transactionColumns = `transaction_id, document_id, company_id, txn_date, description, vendor,
		amount, direction, check_no, balance, category_id, subcategory_id, confidence,
		is_reconciled, reconciled_at, reconciled_by, tax_deductible, notes,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransactions inserts the batch inside one database transaction so a
// partially written batch never becomes visible.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`

	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID, m.DocumentID, m.CompanyID, m.TxnDate, m.Description, m.Vendor,
			m.Amount, m.Direction, m.CheckNo, m.Balance, m.CategoryID, m.SubcategoryID, m.Confidence,
			m.IsReconciled, m.ReconciledAt, m.ReconciledBy, m.TaxDeductible, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range txns {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert transaction batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close transaction batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}

	modelTxn, err := pgx.CollectOneRow(rows, scanTransactionRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves transactions matching the filter, oldest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	argn := 0

	if filter.DocumentID != "" {
		argn++
		query += fmt.Sprintf(" AND document_id = $%d", argn)
		args = append(args, filter.DocumentID)
	}
	if filter.CompanyID != "" {
		argn++
		query += fmt.Sprintf(" AND company_id = $%d", argn)
		args = append(args, filter.CompanyID)
	}
	if filter.IsReconciled != nil {
		argn++
		query += fmt.Sprintf(" AND is_reconciled = $%d", argn)
		args = append(args, *filter.IsReconciled)
	}
	query += ` ORDER BY txn_date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateReconciliation persists the categorization and reconciliation stamp
// of a single transaction.
func (r *PgxTransactionRepository) UpdateReconciliation(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET category_id = $2, subcategory_id = $3, confidence = $4, is_reconciled = $5,
			reconciled_at = $6, reconciled_by = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.CategoryID, m.SubcategoryID, m.Confidence, m.IsReconciled,
		m.ReconciledAt, m.ReconciledBy, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reconciliation of transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanTransactionRow scans one transactions row into its model struct.
func scanTransactionRow(row pgx.CollectableRow) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.DocumentID,
		&txn.CompanyID,
		&txn.TxnDate,
		&txn.Description,
		&txn.Vendor,
		&txn.Amount,
		&txn.Direction,
		&txn.CheckNo,
		&txn.Balance,
		&txn.CategoryID,
		&txn.SubcategoryID,
		&txn.Confidence,
		&txn.IsReconciled,
		&txn.ReconciledAt,
		&txn.ReconciledBy,
		&txn.TaxDeductible,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}
