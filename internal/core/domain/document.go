package domain

// DocumentType classifies an uploaded source document.
type DocumentType string

const (
	DocumentTypeStatement DocumentType = "STATEMENT"
	DocumentTypeReceipt   DocumentType = "RECEIPT"
	DocumentTypeOther     DocumentType = "OTHER"
)

// StorageType identifies which blob backend holds the document bytes.
// It is fixed at upload time and never changed afterwards.
type StorageType string

const (
	StorageInternalChunked StorageType = "INTERNAL_CHUNKED"
	StorageExternalObject  StorageType = "EXTERNAL_OBJECT"
)

// ProcessingStatus tracks a document through the analysis pipeline.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "PENDING"
	StatusUploaded   ProcessingStatus = "UPLOADED"
	StatusStored     ProcessingStatus = "STORED"
	StatusProcessing ProcessingStatus = "PROCESSING"
	StatusCompleted  ProcessingStatus = "COMPLETED"
	StatusFailed     ProcessingStatus = "FAILED"
)

// statusTransitions is the full transition table. COMPLETED and FAILED are
// terminal: re-dispatch out of FAILED happens only through an explicit
// claim by the lifecycle orchestrator, never through a regular update.
var statusTransitions = map[ProcessingStatus][]ProcessingStatus{
	StatusPending:    {StatusUploaded, StatusStored},
	StatusUploaded:   {StatusStored, StatusProcessing},
	StatusStored:     {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusFailed},
}

// CanTransitionTo reports whether a regular status update from s to next is legal.
func (s ProcessingStatus) CanTransitionTo(next ProcessingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no regular transition leaves this status.
func (s ProcessingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// AccountingDocument is the record of truth for one uploaded source file
// (bank statement, receipt) tracked through the processing pipeline.
type AccountingDocument struct {
	DocumentID       string           `json:"documentID"` // Primary Key (UUID)
	CompanyID        string           `json:"companyID"`  // FK -> Company.companyID (Not Null)
	Month            int              `json:"month"`      // Reporting period month (1-12)
	Year             int              `json:"year"`       // Reporting period year
	DocumentType     DocumentType     `json:"documentType"`
	FileName         string           `json:"fileName"` // Original upload filename
	ContentType      string           `json:"contentType"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	ErrorMessage     string           `json:"errorMessage"` // Non-empty only while FAILED
	StorageType      StorageType      `json:"storageType"`
	ChunkFileID      string           `json:"chunkFileID"` // Set iff StorageType == INTERNAL_CHUNKED
	ObjectPath       string           `json:"objectPath"`  // Set iff StorageType == EXTERNAL_OBJECT
	AnalysisResult   *AnalysisResult  `json:"analysisResult,omitempty"`
	UploadedBy       string           `json:"uploadedBy"` // UserID Reference
	AuditFields
}

// StorageHandle returns the handle matching the document's storage type.
func (d AccountingDocument) StorageHandle() string {
	if d.StorageType == StorageExternalObject {
		return d.ObjectPath
	}
	return d.ChunkFileID
}

// HasValidStorage reports whether exactly one handle field is populated,
// consistent with the storage type.
func (d AccountingDocument) HasValidStorage() bool {
	switch d.StorageType {
	case StorageInternalChunked:
		return d.ChunkFileID != "" && d.ObjectPath == ""
	case StorageExternalObject:
		return d.ObjectPath != "" && d.ChunkFileID == ""
	default:
		return false
	}
}
