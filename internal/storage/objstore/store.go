// Package objstore stores document blobs in a Google Cloud Storage bucket.
package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	"google.golang.org/api/option"
)

type Store struct {
	client *gcs.Client
	bucket string
}

// NewStore creates a blob store backed by the given bucket. Credentials
// resolve through the usual application default chain unless opts override
// them.
func NewStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*Store, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &Store{client: client, bucket: bucket}, nil
}

// Ensure implementation matches interface
var _ ports.BlobStore = (*Store)(nil)

// Put writes the blob under a company-scoped object path and returns that
// path as the handle.
func (s *Store) Put(ctx context.Context, data []byte, meta ports.BlobMetadata) (string, error) {
	objectPath := path.Join("companies", meta.CompanyID, uuid.NewString()+"_"+meta.FileName)

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = meta.ContentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("%w: failed to write object %s: %w", apperrors.ErrStorageIO, objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to finalize object %s: %w", apperrors.ErrStorageIO, objectPath, err)
	}
	return objectPath, nil
}

// Get reads the whole object back.
func (s *Store) Get(ctx context.Context, handle string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(handle).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to open object %s: %w", apperrors.ErrStorageIO, handle, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read object %s: %w", apperrors.ErrStorageIO, handle, err)
	}
	return data, nil
}

// Delete removes the object.
func (s *Store) Delete(ctx context.Context, handle string) error {
	err := s.client.Bucket(s.bucket).Object(handle).Delete(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: failed to delete object %s: %w", apperrors.ErrStorageIO, handle, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
