package domain

// DocumentDigest is the per-document row of the diagnostic view.
type DocumentDigest struct {
	DocumentID       string           `json:"documentID"`
	Month            int              `json:"month"`
	Year             int              `json:"year"`
	DocumentType     DocumentType     `json:"documentType"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	ErrorMessage     string           `json:"errorMessage,omitempty"`
	TransactionCount int              `json:"transactionCount"`
	HasPLData        bool             `json:"hasPLData"`  // Non-zero P&L extracted
	HasZeroPL        bool             `json:"hasZeroPL"`  // P&L present but all-zero
}

// DocumentSummary aggregates a company's documents so silent zero-value or
// malformed outcomes are discoverable without opening each record.
type DocumentSummary struct {
	Total            int `json:"total"`
	Completed        int `json:"completed"`
	Failed           int `json:"failed"`
	Stored           int `json:"stored"`
	WithPLData       int `json:"withPLData"`
	WithZeroPL       int `json:"withZeroPL"`
	WithTransactions int `json:"withTransactions"` // At least one extracted transaction
}

// CompanyDocumentsReport is the diagnostic read endpoint payload.
type CompanyDocumentsReport struct {
	CompanyID string           `json:"companyID"`
	Documents []DocumentDigest `json:"documents"`
	Summary   DocumentSummary  `json:"summary"`
}
