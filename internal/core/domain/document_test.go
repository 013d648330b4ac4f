package domain_test

import (
	"testing"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProcessingStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.ProcessingStatus
		to      domain.ProcessingStatus
		allowed bool
	}{
		{"pending to uploaded", domain.StatusPending, domain.StatusUploaded, true},
		{"pending to stored", domain.StatusPending, domain.StatusStored, true},
		{"uploaded to stored", domain.StatusUploaded, domain.StatusStored, true},
		{"uploaded to processing", domain.StatusUploaded, domain.StatusProcessing, true},
		{"stored to processing", domain.StatusStored, domain.StatusProcessing, true},
		{"processing to completed", domain.StatusProcessing, domain.StatusCompleted, true},
		{"processing to failed", domain.StatusProcessing, domain.StatusFailed, true},
		{"completed is terminal", domain.StatusCompleted, domain.StatusProcessing, false},
		{"failed is terminal", domain.StatusFailed, domain.StatusProcessing, false},
		{"failed cannot complete directly", domain.StatusFailed, domain.StatusCompleted, false},
		{"no skipping to completed", domain.StatusUploaded, domain.StatusCompleted, false},
		{"no going backwards", domain.StatusProcessing, domain.StatusStored, false},
		{"pending cannot fail", domain.StatusPending, domain.StatusFailed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestProcessingStatusIsTerminal(t *testing.T) {
	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusFailed.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusUploaded.IsTerminal())
	assert.False(t, domain.StatusStored.IsTerminal())
	assert.False(t, domain.StatusProcessing.IsTerminal())
}

func TestHasValidStorage(t *testing.T) {
	testCases := []struct {
		name  string
		doc   domain.AccountingDocument
		valid bool
	}{
		{
			"internal with file id",
			domain.AccountingDocument{StorageType: domain.StorageInternalChunked, ChunkFileID: "f1"},
			true,
		},
		{
			"external with path",
			domain.AccountingDocument{StorageType: domain.StorageExternalObject, ObjectPath: "docs/a.pdf"},
			true,
		},
		{
			"internal missing handle",
			domain.AccountingDocument{StorageType: domain.StorageInternalChunked},
			false,
		},
		{
			"external missing handle",
			domain.AccountingDocument{StorageType: domain.StorageExternalObject},
			false,
		},
		{
			"both handles set",
			domain.AccountingDocument{StorageType: domain.StorageInternalChunked, ChunkFileID: "f1", ObjectPath: "docs/a.pdf"},
			false,
		},
		{
			"unknown storage type",
			domain.AccountingDocument{StorageType: "TAPE", ChunkFileID: "f1"},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.doc.HasValidStorage())
		})
	}
}

func TestStorageHandle(t *testing.T) {
	internal := domain.AccountingDocument{StorageType: domain.StorageInternalChunked, ChunkFileID: "f1"}
	external := domain.AccountingDocument{StorageType: domain.StorageExternalObject, ObjectPath: "docs/a.pdf"}

	assert.Equal(t, "f1", internal.StorageHandle())
	assert.Equal(t, "docs/a.pdf", external.StorageHandle())
}
