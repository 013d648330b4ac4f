package ports

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// BlobMetadata describes the bytes being stored.
type BlobMetadata struct {
	FileName    string
	ContentType string
	CompanyID   string
}

// BlobStore is the uniform put/get/delete capability over one blob backend.
// Delete on a missing handle returns apperrors.ErrNotFound; callers decide
// whether "already gone" is tolerable. I/O failures surface as wrapped
// apperrors.ErrStorageIO.
type BlobStore interface {
	Put(ctx context.Context, data []byte, meta BlobMetadata) (handle string, err error)
	Get(ctx context.Context, handle string) ([]byte, error)
	Delete(ctx context.Context, handle string) error
}

// BlobStoreProvider selects the backend for a document's stored storage
// type tag. The tag is authoritative; backends are never inferred from
// handle shape.
type BlobStoreProvider interface {
	For(storageType domain.StorageType) (BlobStore, error)
}
