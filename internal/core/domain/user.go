package domain

// User is an authenticated operator. Mutating operations record the acting
// user (uploadedBy, reconciledBy); identity is supplied by the auth
// middleware, never re-derived here.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`
	AuditFields
}
