package dto

import "github.com/pesobooks/bookkeeping_app/internal/core/domain"

// CreateCompanyRequest registers a new client company.
type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	LegalName     string `json:"legalName" binding:"required,max=300"`
	Slug          string `json:"slug" binding:"required,lowercase,max=100"`
	TaxID         string `json:"taxID" binding:"omitempty,max=50"`
	Currency      string `json:"currency" binding:"omitempty,len=3,uppercase"`
	FiscalYearEnd int    `json:"fiscalYearEnd" binding:"omitempty,min=1,max=12"`
	Street        string `json:"street" binding:"omitempty,max=300"`
	City          string `json:"city" binding:"omitempty,max=100"`
	Province      string `json:"province" binding:"omitempty,max=100"`
	PostalCode    string `json:"postalCode" binding:"omitempty,max=20"`
	Country       string `json:"country" binding:"omitempty,max=100"`
	ContactName   string `json:"contactName" binding:"omitempty,max=200"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone  string `json:"contactPhone" binding:"omitempty,max=50"`
}

// UpdateCompanyStatusRequest activates or deactivates a company.
type UpdateCompanyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// CompanyResponse is the API representation of a Company.
type CompanyResponse struct {
	CompanyID     string         `json:"companyID"`
	Name          string         `json:"name"`
	LegalName     string         `json:"legalName"`
	Slug          string         `json:"slug"`
	TaxID         string         `json:"taxID,omitempty"`
	Currency      string         `json:"currency"`
	FiscalYearEnd int            `json:"fiscalYearEnd"`
	Status        string         `json:"status"`
	Address       domain.Address `json:"address"`
	ContactName   string         `json:"contactName,omitempty"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	ContactPhone  string         `json:"contactPhone,omitempty"`
}

// ToCompanyResponse converts a domain company to its API form.
func ToCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		LegalName:     c.LegalName,
		Slug:          c.Slug,
		TaxID:         c.TaxID,
		Currency:      c.Currency,
		FiscalYearEnd: c.FiscalYearEnd,
		Status:        string(c.Status),
		Address:       c.Address,
		ContactName:   c.ContactName,
		ContactEmail:  c.ContactEmail,
		ContactPhone:  c.ContactPhone,
	}
}
