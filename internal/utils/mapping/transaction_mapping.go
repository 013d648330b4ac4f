package mapping

import (
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/models"
)

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToModelTransaction converts a domain transaction to a model row. Empty
// optional references become NULLs.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		DocumentID:    d.DocumentID,
		CompanyID:     strOrNil(d.CompanyID),
		TxnDate:       d.TxnDate,
		Description:   d.Description,
		Vendor:        d.Vendor,
		Amount:        d.Amount,
		Direction:     string(d.Direction),
		CheckNo:       d.CheckNo,
		Balance:       d.Balance,
		CategoryID:    strOrNil(d.CategoryID),
		SubcategoryID: strOrNil(d.SubcategoryID),
		Confidence:    d.Confidence,
		IsReconciled:  d.IsReconciled,
		ReconciledAt:  d.ReconciledAt,
		ReconciledBy:  strOrNil(d.ReconciledBy),
		TaxDeductible: d.TaxDeductible,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model row to a domain transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		DocumentID:    m.DocumentID,
		CompanyID:     strOrEmpty(m.CompanyID),
		TxnDate:       m.TxnDate,
		Description:   m.Description,
		Vendor:        m.Vendor,
		Amount:        m.Amount,
		Direction:     domain.TransactionDirection(m.Direction),
		CheckNo:       m.CheckNo,
		Balance:       m.Balance,
		CategoryID:    strOrEmpty(m.CategoryID),
		SubcategoryID: strOrEmpty(m.SubcategoryID),
		Confidence:    m.Confidence,
		IsReconciled:  m.IsReconciled,
		ReconciledAt:  m.ReconciledAt,
		ReconciledBy:  strOrEmpty(m.ReconciledBy),
		TaxDeductible: m.TaxDeductible,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model rows to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
