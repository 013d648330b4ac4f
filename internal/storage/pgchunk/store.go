// Package pgchunk stores document blobs inside Postgres, split into
// fixed-size chunks. It keeps small deployments single-system: no object
// store credentials are needed and blobs share the database's backup story.
package pgchunk

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
)

// DefaultChunkSize is used when the configured chunk size is not positive.
const DefaultChunkSize = 256 * 1024

type Store struct {
	pool      *pgxpool.Pool
	chunkSize int
}

// NewStore creates a chunked blob store on the given pool.
func NewStore(pool *pgxpool.Pool, chunkSize int) *Store {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Store{pool: pool, chunkSize: chunkSize}
}

// Ensure implementation matches interface
var _ ports.BlobStore = (*Store)(nil)

// Put writes the blob as one file row plus ordered chunk rows in a single
// transaction. The returned handle is the generated file id; it carries no
// backend information.
func (s *Store) Put(ctx context.Context, data []byte, meta ports.BlobMetadata) (string, error) {
	fileID := uuid.NewString()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: failed to begin blob write: %w", apperrors.ErrStorageIO, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO document_blob_files (file_id, file_name, content_type, company_id, length, chunk_size)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, fileID, meta.FileName, meta.ContentType, meta.CompanyID, len(data), s.chunkSize)
	if err != nil {
		return "", fmt.Errorf("%w: failed to write blob file row %s: %w", apperrors.ErrStorageIO, fileID, err)
	}

	batch := &pgx.Batch{}
	for index := 0; index*s.chunkSize < len(data) || index == 0; index++ {
		start := index * s.chunkSize
		end := start + s.chunkSize
		if end > len(data) {
			end = len(data)
		}
		batch.Queue(`
			INSERT INTO document_blob_chunks (file_id, chunk_index, data)
			VALUES ($1, $2, $3);
		`, fileID, index, data[start:end])
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return "", fmt.Errorf("%w: failed to write blob chunk %d of %s: %w", apperrors.ErrStorageIO, i, fileID, err)
		}
	}
	if err := results.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to flush blob chunks of %s: %w", apperrors.ErrStorageIO, fileID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("%w: failed to commit blob write %s: %w", apperrors.ErrStorageIO, fileID, err)
	}
	return fileID, nil
}

// Get reassembles the blob from its ordered chunks.
func (s *Store) Get(ctx context.Context, handle string) ([]byte, error) {
	var length int
	err := s.pool.QueryRow(ctx, `SELECT length FROM document_blob_files WHERE file_id = $1;`, handle).Scan(&length)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to read blob file row %s: %w", apperrors.ErrStorageIO, handle, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT data FROM document_blob_chunks
		WHERE file_id = $1
		ORDER BY chunk_index ASC;
	`, handle)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query blob chunks of %s: %w", apperrors.ErrStorageIO, handle, err)
	}

	data := make([]byte, 0, length)
	chunks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]byte, error) {
		var chunk []byte
		err := row.Scan(&chunk)
		return chunk, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan blob chunks of %s: %w", apperrors.ErrStorageIO, handle, err)
	}
	for _, chunk := range chunks {
		data = append(data, chunk...)
	}

	if len(data) != length {
		return nil, fmt.Errorf("%w: blob %s is incomplete: have %d bytes, want %d", apperrors.ErrStorageIO, handle, len(data), length)
	}
	return data, nil
}

// Delete removes the file row and its chunks. Chunks go via ON DELETE
// CASCADE on the file row.
func (s *Store) Delete(ctx context.Context, handle string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM document_blob_files WHERE file_id = $1;`, handle)
	if err != nil {
		return fmt.Errorf("%w: failed to delete blob %s: %w", apperrors.ErrStorageIO, handle, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
