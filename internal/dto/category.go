package dto

import "github.com/pesobooks/bookkeeping_app/internal/core/domain"

// SubcategoryResponse is the API representation of a Subcategory.
type SubcategoryResponse struct {
	SubcategoryID string `json:"subcategoryID"`
	Name          string `json:"name"`
}

// CategoryResponse is the API representation of a Category with its
// subcategories.
type CategoryResponse struct {
	CategoryID    string                `json:"categoryID"`
	Name          string                `json:"name"`
	Kind          string                `json:"kind"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// ListCategoriesResponse is the taxonomy listing payload.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts the domain taxonomy to its API form.
func ToListCategoriesResponse(taxonomy []domain.CategoryTaxonomy) ListCategoriesResponse {
	categories := make([]CategoryResponse, len(taxonomy))
	for i, t := range taxonomy {
		subs := make([]SubcategoryResponse, len(t.Subcategories))
		for j, s := range t.Subcategories {
			subs[j] = SubcategoryResponse{SubcategoryID: s.SubcategoryID, Name: s.Name}
		}
		categories[i] = CategoryResponse{
			CategoryID:    t.CategoryID,
			Name:          t.Name,
			Kind:          t.Kind,
			Subcategories: subs,
		}
	}
	return ListCategoriesResponse{Categories: categories}
}
