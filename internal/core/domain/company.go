package domain

// CompanyStatus indicates whether a client company is active.
type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "ACTIVE"
	CompanyInactive CompanyStatus = "INACTIVE"
)

// Address is the registered address block of a company.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Company is a client company whose source documents are ingested.
// Name and Slug are globally unique.
type Company struct {
	CompanyID     string        `json:"companyID"` // Primary Key (UUID)
	Name          string        `json:"name"`      // Unique
	LegalName     string        `json:"legalName"`
	Slug          string        `json:"slug"` // Unique
	TaxID         string        `json:"taxID,omitempty"`
	Currency      string        `json:"currency"`      // ISO 4217, default PHP
	FiscalYearEnd int           `json:"fiscalYearEnd"` // Month 1-12
	Status        CompanyStatus `json:"status"`
	Address       Address       `json:"address"`
	ContactName   string        `json:"contactName,omitempty"`
	ContactEmail  string        `json:"contactEmail,omitempty"`
	ContactPhone  string        `json:"contactPhone,omitempty"`
	AuditFields
}
