package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether a transaction is a debit or a
// credit. The amount is always a positive magnitude; direction encodes the
// polarity independently of any sign in the source data.
type TransactionDirection string

const (
	Debit  TransactionDirection = "DEBIT"
	Credit TransactionDirection = "CREDIT"
)

// Transaction is one canonical line item extracted from a source document.
type Transaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	DocumentID    string               `json:"documentID"`    // FK -> AccountingDocument (Not Null)
	CompanyID     string               `json:"companyID"`     // FK -> Company, empty when undeterminable
	TxnDate       time.Time            `json:"txnDate"`
	Description   string               `json:"description"`
	Vendor        string               `json:"vendor"` // Derived from description
	Amount        decimal.Decimal      `json:"amount"` // Positive magnitude
	Direction     TransactionDirection `json:"direction"`
	CheckNo       string               `json:"checkNo,omitempty"`
	Balance       *decimal.Decimal     `json:"balance,omitempty"` // Running balance when present
	CategoryID    string               `json:"categoryID,omitempty"`
	SubcategoryID string               `json:"subcategoryID,omitempty"` // Must belong under CategoryID
	Confidence    *float64             `json:"confidence,omitempty"`    // Categorization certainty in [0,1]
	IsReconciled  bool                 `json:"isReconciled"`
	ReconciledAt  *time.Time           `json:"reconciledAt,omitempty"` // Set together with ReconciledBy
	ReconciledBy  string               `json:"reconciledBy,omitempty"` // UserID Reference
	TaxDeductible bool                 `json:"taxDeductible"`
	Notes         string               `json:"notes,omitempty"`
	AuditFields
}

// ItemError records a single malformed line item skipped during ingestion.
// Collecting these per item keeps one bad row from aborting the batch.
type ItemError struct {
	Index  int    `json:"index"` // Position in the extracted sequence
	Reason string `json:"reason"`
}
