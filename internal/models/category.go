package models

// Category is the categories table row.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	AuditFields
}

// Subcategory is the subcategories table row.
type Subcategory struct {
	SubcategoryID string `json:"subcategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
	AuditFields
}
