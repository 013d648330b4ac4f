package dto

import (
	"time"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconcileTransactionRequest confirms or reassigns a transaction's
// category. Subcategory is optional and must belong under the category.
type ReconcileTransactionRequest struct {
	CategoryID    string `json:"categoryID" binding:"required,uuid"`
	SubcategoryID string `json:"subcategoryID" binding:"omitempty,uuid"`
	Notes         string `json:"notes" binding:"omitempty,max=1000"`
}

// TransactionResponse is the API representation of a Transaction.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	DocumentID    string           `json:"documentID"`
	CompanyID     string           `json:"companyID,omitempty"`
	TxnDate       time.Time        `json:"txnDate"`
	Description   string           `json:"description"`
	Vendor        string           `json:"vendor,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Direction     string           `json:"direction"`
	CheckNo       string           `json:"checkNo,omitempty"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
	CategoryID    string           `json:"categoryID,omitempty"`
	SubcategoryID string           `json:"subcategoryID,omitempty"`
	Confidence    *float64         `json:"confidence,omitempty"`
	IsReconciled  bool             `json:"isReconciled"`
	ReconciledAt  *time.Time       `json:"reconciledAt,omitempty"`
	ReconciledBy  string           `json:"reconciledBy,omitempty"`
	TaxDeductible bool             `json:"taxDeductible"`
	Notes         string           `json:"notes,omitempty"`
}

// ListTransactionsResponse wraps a transaction listing together with any
// per-item ingestion errors recorded for the document.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain transaction to its API form.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		DocumentID:    t.DocumentID,
		CompanyID:     t.CompanyID,
		TxnDate:       t.TxnDate,
		Description:   t.Description,
		Vendor:        t.Vendor,
		Amount:        t.Amount,
		Direction:     string(t.Direction),
		CheckNo:       t.CheckNo,
		Balance:       t.Balance,
		CategoryID:    t.CategoryID,
		SubcategoryID: t.SubcategoryID,
		Confidence:    t.Confidence,
		IsReconciled:  t.IsReconciled,
		ReconciledAt:  t.ReconciledAt,
		ReconciledBy:  t.ReconciledBy,
		TaxDeductible: t.TaxDeductible,
		Notes:         t.Notes,
	}
}

// ToListTransactionsResponse converts a transaction slice to the listing payload.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{Transactions: out}
}
