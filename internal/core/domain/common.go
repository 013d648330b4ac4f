package domain

import "time"

// AuditFields holds the standard audit trail embedded in every entity.
// CreatedBy/LastUpdatedBy carry a UserID, or a system actor label for rows
// written outside a user request (e.g. migrations).
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
