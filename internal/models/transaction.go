package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID string           `json:"transactionID"`
	DocumentID    string           `json:"documentID"`
	CompanyID     *string          `json:"companyID"` // Nullable, legacy/undetermined data permitted
	TxnDate       time.Time        `json:"txnDate"`
	Description   string           `json:"description"`
	Vendor        string           `json:"vendor"`
	Amount        decimal.Decimal  `json:"amount"` // Positive magnitude
	Direction     string           `json:"direction"`
	CheckNo       string           `json:"checkNo"`
	Balance       *decimal.Decimal `json:"balance"`
	CategoryID    *string          `json:"categoryID"`
	SubcategoryID *string          `json:"subcategoryID"`
	Confidence    *float64         `json:"confidence"`
	IsReconciled  bool             `json:"isReconciled"`
	ReconciledAt  *time.Time       `json:"reconciledAt"`
	ReconciledBy  *string          `json:"reconciledBy"`
	TaxDeductible bool             `json:"taxDeductible"`
	Notes         string           `json:"notes"`
	AuditFields
}
