package domain

import "github.com/shopspring/decimal"

// PLStatement holds the aggregate revenue/expense totals extracted from a
// document. A zero-valued statement is a legal "no financial activity"
// outcome and is distinguished from an absent one.
type PLStatement struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`  // >= 0
	TotalExpenses decimal.Decimal `json:"totalExpenses"` // >= 0
}

// IsZero reports whether both totals are zero.
func (p PLStatement) IsZero() bool {
	return p.TotalRevenue.IsZero() && p.TotalExpenses.IsZero()
}

// ExtractedTransaction is one line item as perceived by the model, before
// reconciliation maps it into a Transaction record.
type ExtractedTransaction struct {
	Date        string           `json:"date"` // YYYY-MM-DD as returned by the model
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"` // Positive magnitude
	Direction   string           `json:"direction"`
	CheckNo     string           `json:"checkNo,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Category    string           `json:"category,omitempty"`
	Subcategory string           `json:"subcategory,omitempty"`
	Confidence  float64          `json:"confidence"`
}

// AnalysisResult is the structured (or parse-failed) output of submitting a
// document to the LLM capability. It is embedded in the AccountingDocument,
// not an entity of its own.
//
// Invariant: if ParseError is set, Transactions and PLStatement are absent.
// RawResponse is stored untruncated either way so failures stay diagnosable
// without re-calling the model; truncation happens only at read time.
type AnalysisResult struct {
	DocumentType DocumentType           `json:"documentType"` // As perceived by the model
	Transactions []ExtractedTransaction `json:"transactions,omitempty"`
	PLStatement  *PLStatement           `json:"plStatement,omitempty"`
	Summary      string                 `json:"summary,omitempty"`
	Insights     []string               `json:"insights,omitempty"`
	RawResponse  string                 `json:"rawResponse"`
	ParseError   string                 `json:"parseError,omitempty"`
	Model        string                 `json:"model,omitempty"` // Passed through for observability
}

// Failed reports whether structured extraction from the raw output failed.
func (r AnalysisResult) Failed() bool {
	return r.ParseError != ""
}

// HasPLData reports whether a non-zero P&L statement was extracted.
func (r AnalysisResult) HasPLData() bool {
	return r.PLStatement != nil && !r.PLStatement.IsZero()
}
