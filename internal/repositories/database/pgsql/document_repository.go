package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/models"
	"github.com/pesobooks/bookkeeping_app/internal/utils/mapping"
)

const documentColumns = `document_id, company_id, month, year, document_type, file_name, content_type,
		processing_status, error_message, storage_type, chunk_file_id, object_path, analysis_result,
		uploaded_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for accounting documents.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepository = (*PgxDocumentRepository)(nil)

// SaveDocument inserts a new document record.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.AccountingDocument) error {
	modelDoc, err := mapping.ToModelDocument(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err = r.Pool.Exec(ctx, query,
		modelDoc.DocumentID,
		modelDoc.CompanyID,
		modelDoc.Month,
		modelDoc.Year,
		modelDoc.DocumentType,
		modelDoc.FileName,
		modelDoc.ContentType,
		modelDoc.ProcessingStatus,
		modelDoc.ErrorMessage,
		modelDoc.StorageType,
		nullIfEmpty(modelDoc.ChunkFileID),
		nullIfEmpty(modelDoc.ObjectPath),
		modelDoc.AnalysisResult,
		modelDoc.UploadedBy,
		modelDoc.CreatedAt,
		modelDoc.CreatedBy,
		modelDoc.LastUpdatedAt,
		modelDoc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", modelDoc.DocumentID, err)
	}
	return nil
}

// FindDocumentByID retrieves a document by its id.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.AccountingDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`

	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document %s: %w", documentID, err)
	}

	modelDoc, err := pgx.CollectOneRow(rows, scanDocumentRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan document %s: %w", documentID, err)
	}

	domainDoc, err := mapping.ToDomainDocument(modelDoc)
	if err != nil {
		return nil, err
	}
	return &domainDoc, nil
}

// ListDocuments retrieves documents for a company, most recent fiscal
// period and most recently created first.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.AccountingDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE company_id = $1`
	args := []interface{}{filter.CompanyID}
	if filter.Status != nil {
		query += ` AND processing_status = $2`
		args = append(args, string(*filter.Status))
	}
	query += ` ORDER BY year DESC, month DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for company %s: %w", filter.CompanyID, err)
	}

	modelDocs, err := pgx.CollectRows(rows, scanDocumentRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents for company %s: %w", filter.CompanyID, err)
	}

	return mapping.ToDomainDocumentSlice(modelDocs)
}

// UpdateStatus sets the processing status and error message.
func (r *PgxDocumentRepository) UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, updatedBy string) error {
	query := `
		UPDATE documents
		SET processing_status = $2, error_message = $3, last_updated_at = $4, last_updated_by = $5
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, string(status), errorMessage, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveAnalysisResult stores the analysis result together with the final
// status of the run, in one statement.
func (r *PgxDocumentRepository) SaveAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, updatedBy string) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result for document %s: %w", documentID, err)
	}

	query := `
		UPDATE documents
		SET analysis_result = $2, processing_status = $3, error_message = $4, last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, payload, string(status), errorMessage, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to save analysis result for document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClaimProcessing moves the document into PROCESSING iff its current status
// is one of from. The guard runs inside the UPDATE so concurrent dispatch
// for the same document id is serialized by the database.
func (r *PgxDocumentRepository) ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, updatedBy string) error {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	query := `
		UPDATE documents
		SET processing_status = $2, error_message = '', last_updated_at = $3, last_updated_by = $4
		WHERE document_id = $1 AND processing_status = ANY($5);
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, string(domain.StatusProcessing), time.Now(), updatedBy, allowed)
	if err != nil {
		return fmt.Errorf("failed to claim document %s for processing: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing record from a lost compare-and-set.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM documents WHERE document_id = $1);`, documentID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check existence of document %s: %w", documentID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// DeleteDocument removes the record.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanDocumentRow scans one documents row into its model struct.
func scanDocumentRow(row pgx.CollectableRow) (models.AccountingDocument, error) {
	var doc models.AccountingDocument
	var chunkFileID, objectPath *string
	err := row.Scan(
		&doc.DocumentID,
		&doc.CompanyID,
		&doc.Month,
		&doc.Year,
		&doc.DocumentType,
		&doc.FileName,
		&doc.ContentType,
		&doc.ProcessingStatus,
		&doc.ErrorMessage,
		&doc.StorageType,
		&chunkFileID,
		&objectPath,
		&doc.AnalysisResult,
		&doc.UploadedBy,
		&doc.CreatedAt,
		&doc.CreatedBy,
		&doc.LastUpdatedAt,
		&doc.LastUpdatedBy,
	)
	if chunkFileID != nil {
		doc.ChunkFileID = *chunkFileID
	}
	if objectPath != nil {
		doc.ObjectPath = *objectPath
	}
	return doc, err
}

// nullIfEmpty maps empty strings to NULL for nullable text columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
