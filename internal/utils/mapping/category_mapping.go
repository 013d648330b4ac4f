package mapping

import (
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/models"
)

// ToDomainCategory converts a model row to a domain category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Kind:        m.Kind,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model rows to domain categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToDomainSubcategory converts a model row to a domain subcategory.
func ToDomainSubcategory(m models.Subcategory) domain.Subcategory {
	return domain.Subcategory{
		SubcategoryID: m.SubcategoryID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSubcategorySlice converts a slice of model rows to domain subcategories.
func ToDomainSubcategorySlice(ms []models.Subcategory) []domain.Subcategory {
	ds := make([]domain.Subcategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubcategory(m)
	}
	return ds
}
