package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/models"
)

// ToModelDocument converts a domain document to a model row, marshalling
// the analysis result into its JSONB form.
func ToModelDocument(d domain.AccountingDocument) (models.AccountingDocument, error) {
	m := models.AccountingDocument{
		DocumentID:       d.DocumentID,
		CompanyID:        d.CompanyID,
		Month:            d.Month,
		Year:             d.Year,
		DocumentType:     string(d.DocumentType),
		FileName:         d.FileName,
		ContentType:      d.ContentType,
		ProcessingStatus: string(d.ProcessingStatus),
		ErrorMessage:     d.ErrorMessage,
		StorageType:      string(d.StorageType),
		ChunkFileID:      d.ChunkFileID,
		ObjectPath:       d.ObjectPath,
		UploadedBy:       d.UploadedBy,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.AnalysisResult != nil {
		payload, err := json.Marshal(d.AnalysisResult)
		if err != nil {
			return models.AccountingDocument{}, fmt.Errorf("failed to marshal analysis result for document %s: %w", d.DocumentID, err)
		}
		m.AnalysisResult = payload
	}
	return m, nil
}

// ToDomainDocument converts a model row to a domain document, unmarshalling
// the stored analysis result when present.
func ToDomainDocument(m models.AccountingDocument) (domain.AccountingDocument, error) {
	d := domain.AccountingDocument{
		DocumentID:       m.DocumentID,
		CompanyID:        m.CompanyID,
		Month:            m.Month,
		Year:             m.Year,
		DocumentType:     domain.DocumentType(m.DocumentType),
		FileName:         m.FileName,
		ContentType:      m.ContentType,
		ProcessingStatus: domain.ProcessingStatus(m.ProcessingStatus),
		ErrorMessage:     m.ErrorMessage,
		StorageType:      domain.StorageType(m.StorageType),
		ChunkFileID:      m.ChunkFileID,
		ObjectPath:       m.ObjectPath,
		UploadedBy:       m.UploadedBy,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if len(m.AnalysisResult) > 0 {
		var result domain.AnalysisResult
		if err := json.Unmarshal(m.AnalysisResult, &result); err != nil {
			return domain.AccountingDocument{}, fmt.Errorf("failed to unmarshal analysis result for document %s: %w", m.DocumentID, err)
		}
		d.AnalysisResult = &result
	}
	return d, nil
}

// ToDomainDocumentSlice converts a slice of model rows to domain documents.
func ToDomainDocumentSlice(ms []models.AccountingDocument) ([]domain.AccountingDocument, error) {
	ds := make([]domain.AccountingDocument, len(ms))
	for i, m := range ms {
		d, err := ToDomainDocument(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
