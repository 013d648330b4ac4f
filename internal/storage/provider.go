// Package storage selects between the interchangeable blob backends.
package storage

import (
	"fmt"

	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
)

type Provider struct {
	internal ports.BlobStore
	external ports.BlobStore
}

// NewProvider wires the two backends. Either may be nil when the deployment
// does not configure it; For then fails for that storage type.
func NewProvider(internal ports.BlobStore, external ports.BlobStore) *Provider {
	return &Provider{internal: internal, external: external}
}

// Ensure implementation matches interface
var _ ports.BlobStoreProvider = (*Provider)(nil)

// For resolves the backend for a document's stored storage type tag.
func (p *Provider) For(storageType domain.StorageType) (ports.BlobStore, error) {
	switch storageType {
	case domain.StorageInternalChunked:
		if p.internal == nil {
			return nil, fmt.Errorf("%w: internal chunked storage is not configured", apperrors.ErrValidation)
		}
		return p.internal, nil
	case domain.StorageExternalObject:
		if p.external == nil {
			return nil, fmt.Errorf("%w: external object storage is not configured", apperrors.ErrValidation)
		}
		return p.external, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage type %q", apperrors.ErrValidation, storageType)
	}
}
