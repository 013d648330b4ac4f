package dto

import "github.com/pesobooks/bookkeeping_app/internal/core/domain"

// DocumentDigestResponse is one row of the diagnostic summary view.
type DocumentDigestResponse struct {
	DocumentID       string `json:"documentID"`
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	DocumentType     string `json:"documentType"`
	ProcessingStatus string `json:"processingStatus"`
	ErrorMessage     string `json:"errorMessage,omitempty"`
	TransactionCount int    `json:"transactionCount"`
	HasPLData        bool   `json:"hasPLData"`
	HasZeroPL        bool   `json:"hasZeroPL"`
}

// CompanyDocumentsReportResponse is the diagnostic read endpoint payload.
type CompanyDocumentsReportResponse struct {
	CompanyID string                   `json:"companyID"`
	Documents []DocumentDigestResponse `json:"documents"`
	Summary   domain.DocumentSummary   `json:"summary"`
}

// ToCompanyDocumentsReportResponse converts the domain report to its API form.
func ToCompanyDocumentsReportResponse(r domain.CompanyDocumentsReport) CompanyDocumentsReportResponse {
	docs := make([]DocumentDigestResponse, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = DocumentDigestResponse{
			DocumentID:       d.DocumentID,
			Month:            d.Month,
			Year:             d.Year,
			DocumentType:     string(d.DocumentType),
			ProcessingStatus: string(d.ProcessingStatus),
			ErrorMessage:     d.ErrorMessage,
			TransactionCount: d.TransactionCount,
			HasPLData:        d.HasPLData,
			HasZeroPL:        d.HasZeroPL,
		}
	}
	return CompanyDocumentsReportResponse{
		CompanyID: r.CompanyID,
		Documents: docs,
		Summary:   r.Summary,
	}
}
