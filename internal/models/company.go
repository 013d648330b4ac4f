package models

// Company is the companies table row.
type Company struct {
	CompanyID     string `json:"companyID"`
	Name          string `json:"name"`
	LegalName     string `json:"legalName"`
	Slug          string `json:"slug"`
	TaxID         string `json:"taxID"`
	Currency      string `json:"currency"`
	FiscalYearEnd int    `json:"fiscalYearEnd"`
	Status        string `json:"status"`
	Street        string `json:"street"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	ContactName   string `json:"contactName"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	AuditFields
}
