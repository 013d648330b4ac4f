package domain

// Category is a node in the accounting category taxonomy.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`       // Unique
	Kind       string `json:"kind"`       // REVENUE or EXPENSE
	AuditFields
}

// Subcategory refines a Category. A transaction's subcategory must belong
// under its category; reconciliation enforces this, storage does not.
type Subcategory struct {
	SubcategoryID string `json:"subcategoryID"` // Primary Key (UUID)
	CategoryID    string `json:"categoryID"`    // FK -> Category.categoryID (Not Null)
	Name          string `json:"name"`
	AuditFields
}

// CategoryTaxonomy pairs a category with its subcategories for read views.
type CategoryTaxonomy struct {
	Category
	Subcategories []Subcategory `json:"subcategories"`
}
