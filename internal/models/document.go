package models

// AccountingDocument is the documents table row. AnalysisResult holds the
// raw JSONB payload; (un)marshalling happens in the mapping layer.
type AccountingDocument struct {
	DocumentID       string `json:"documentID"`
	CompanyID        string `json:"companyID"`
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	DocumentType     string `json:"documentType"`
	FileName         string `json:"fileName"`
	ContentType      string `json:"contentType"`
	ProcessingStatus string `json:"processingStatus"`
	ErrorMessage     string `json:"errorMessage"`
	StorageType      string `json:"storageType"`
	ChunkFileID      string `json:"chunkFileID"`
	ObjectPath       string `json:"objectPath"`
	AnalysisResult   []byte `json:"analysisResult"` // JSONB, nil when analysis has not run
	UploadedBy       string `json:"uploadedBy"`
	AuditFields
}
