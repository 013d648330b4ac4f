package dto

import (
	"time"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
)

// rawResponseCap limits how much raw model output is echoed in responses.
// Storage keeps the full text; only the read path truncates.
const rawResponseCap = 500

// UploadDocumentRequest carries the metadata of a document upload. File
// content arrives as multipart form data and is attached by the handler.
type UploadDocumentRequest struct {
	CompanyID    string `form:"companyID" binding:"required,uuid"`
	Month        int    `form:"month" binding:"required,min=1,max=12"`
	Year         int    `form:"year" binding:"required,min=2000,max=2100"`
	DocumentType string `form:"documentType" binding:"required,oneof=STATEMENT RECEIPT OTHER"`
	StorageType  string `form:"storageType" binding:"omitempty,oneof=INTERNAL_CHUNKED EXTERNAL_OBJECT"`

	FileName    string `form:"-"`
	ContentType string `form:"-"`
	Content     []byte `form:"-"`
}

// AnalysisResultResponse is the read view of an analysis result. RawResponse
// is truncated here, never in storage.
type AnalysisResultResponse struct {
	DocumentType string                        `json:"documentType"`
	Transactions []domain.ExtractedTransaction `json:"transactions,omitempty"`
	PLStatement  *domain.PLStatement           `json:"plStatement,omitempty"`
	Summary      string                        `json:"summary,omitempty"`
	Insights     []string                      `json:"insights,omitempty"`
	RawResponse  string                        `json:"rawResponse,omitempty"`
	ParseError   string                        `json:"parseError,omitempty"`
	Model        string                        `json:"model,omitempty"`
}

// DocumentResponse is the API representation of an AccountingDocument.
type DocumentResponse struct {
	DocumentID       string                  `json:"documentID"`
	CompanyID        string                  `json:"companyID"`
	Month            int                     `json:"month"`
	Year             int                     `json:"year"`
	DocumentType     string                  `json:"documentType"`
	FileName         string                  `json:"fileName"`
	ProcessingStatus string                  `json:"processingStatus"`
	ErrorMessage     string                  `json:"errorMessage,omitempty"`
	StorageType      string                  `json:"storageType"`
	StorageHandle    string                  `json:"storageHandle"`
	AnalysisResult   *AnalysisResultResponse `json:"analysisResult,omitempty"`
	UploadedBy       string                  `json:"uploadedBy"`
	CreatedAt        time.Time               `json:"createdAt"`
	LastUpdatedAt    time.Time               `json:"lastUpdatedAt"`
}

// ListDocumentsResponse wraps a document listing.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToAnalysisResultResponse converts the stored result to its read view.
func ToAnalysisResultResponse(r *domain.AnalysisResult) *AnalysisResultResponse {
	if r == nil {
		return nil
	}
	raw := r.RawResponse
	if len(raw) > rawResponseCap {
		raw = raw[:rawResponseCap]
	}
	return &AnalysisResultResponse{
		DocumentType: string(r.DocumentType),
		Transactions: r.Transactions,
		PLStatement:  r.PLStatement,
		Summary:      r.Summary,
		Insights:     r.Insights,
		RawResponse:  raw,
		ParseError:   r.ParseError,
		Model:        r.Model,
	}
}

// ToDocumentResponse converts a domain document to its API representation.
func ToDocumentResponse(d domain.AccountingDocument) DocumentResponse {
	return DocumentResponse{
		DocumentID:       d.DocumentID,
		CompanyID:        d.CompanyID,
		Month:            d.Month,
		Year:             d.Year,
		DocumentType:     string(d.DocumentType),
		FileName:         d.FileName,
		ProcessingStatus: string(d.ProcessingStatus),
		ErrorMessage:     d.ErrorMessage,
		StorageType:      string(d.StorageType),
		StorageHandle:    d.StorageHandle(),
		AnalysisResult:   ToAnalysisResultResponse(d.AnalysisResult),
		UploadedBy:       d.UploadedBy,
		CreatedAt:        d.CreatedAt,
		LastUpdatedAt:    d.LastUpdatedAt,
	}
}

// ToListDocumentsResponse converts a document slice to the listing payload.
func ToListDocumentsResponse(docs []domain.AccountingDocument) ListDocumentsResponse {
	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = ToDocumentResponse(d)
	}
	return ListDocumentsResponse{Documents: out}
}
