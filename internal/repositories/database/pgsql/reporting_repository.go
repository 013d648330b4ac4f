package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a read-only repository for diagnostic views.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// ListDocumentDigests returns one digest per document of the company. The
// P&L flags are read out of the stored analysis_result JSONB; an absent
// plStatement yields false for both so zero-valued and missing statements
// stay distinguishable.
func (r *ReportingRepository) ListDocumentDigests(ctx context.Context, companyID string) ([]domain.DocumentDigest, error) {
	query := `
		SELECT
			d.document_id,
			d.month,
			d.year,
			d.document_type,
			d.processing_status,
			d.error_message,
			COALESCE(t.txn_count, 0) AS transaction_count,
			COALESCE(
				(d.analysis_result #>> '{plStatement,totalRevenue}')::numeric <> 0
				OR (d.analysis_result #>> '{plStatement,totalExpenses}')::numeric <> 0,
				FALSE
			) AS has_pl_data,
			COALESCE(
				(d.analysis_result #>> '{plStatement,totalRevenue}')::numeric = 0
				AND (d.analysis_result #>> '{plStatement,totalExpenses}')::numeric = 0,
				FALSE
			) AS has_zero_pl
		FROM documents d
		LEFT JOIN (
			SELECT document_id, COUNT(*) AS txn_count
			FROM transactions
			GROUP BY document_id
		) t ON t.document_id = d.document_id
		WHERE d.company_id = $1
		ORDER BY d.year DESC, d.month DESC, d.created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document digests for company %s: %w", companyID, err)
	}

	digests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DocumentDigest, error) {
		var d domain.DocumentDigest
		var docType, status string
		err := row.Scan(
			&d.DocumentID,
			&d.Month,
			&d.Year,
			&docType,
			&status,
			&d.ErrorMessage,
			&d.TransactionCount,
			&d.HasPLData,
			&d.HasZeroPL,
		)
		d.DocumentType = domain.DocumentType(docType)
		d.ProcessingStatus = domain.ProcessingStatus(status)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan document digests for company %s: %w", companyID, err)
	}

	return digests, nil
}
