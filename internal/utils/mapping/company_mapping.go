package mapping

import (
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/models"
)

// ToModelCompany converts a domain company to a model row.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		LegalName:     d.LegalName,
		Slug:          d.Slug,
		TaxID:         d.TaxID,
		Currency:      d.Currency,
		FiscalYearEnd: d.FiscalYearEnd,
		Status:        string(d.Status),
		Street:        d.Address.Street,
		City:          d.Address.City,
		Province:      d.Address.Province,
		PostalCode:    d.Address.PostalCode,
		Country:       d.Address.Country,
		ContactName:   d.ContactName,
		ContactEmail:  d.ContactEmail,
		ContactPhone:  d.ContactPhone,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model row to a domain company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		LegalName:     m.LegalName,
		Slug:          m.Slug,
		TaxID:         m.TaxID,
		Currency:      m.Currency,
		FiscalYearEnd: m.FiscalYearEnd,
		Status:        domain.CompanyStatus(m.Status),
		Address: domain.Address{
			Street:     m.Street,
			City:       m.City,
			Province:   m.Province,
			PostalCode: m.PostalCode,
			Country:    m.Country,
		},
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model rows to domain companies.
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
