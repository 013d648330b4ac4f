package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/models"
	"github.com/pesobooks/bookkeeping_app/internal/utils/mapping"
)

const categoryColumns = `category_id, name, kind, created_at, created_by, last_updated_at, last_updated_by`
const subcategoryColumns = `subcategory_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for the category taxonomy.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	ms, err := pgx.CollectRows(rows, scanCategoryRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// ListSubcategories retrieves the subcategories under one category.
func (r *PgxCategoryRepository) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE category_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategories of %s: %w", categoryID, err)
	}

	ms, err := pgx.CollectRows(rows, scanSubcategoryRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan subcategories of %s: %w", categoryID, err)
	}
	return mapping.ToDomainSubcategorySlice(ms), nil
}

// FindCategoryByID retrieves a category by id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return r.findCategory(ctx, `category_id`, categoryID)
}

// FindCategoryByName retrieves a category by its unique name. The lookup is
// case-insensitive because model output casing is not reliable.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER($1);`

	rows, err := r.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query category by name: %w", err)
	}

	m, err := pgx.CollectOneRow(rows, scanCategoryRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan category by name: %w", err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) findCategory(ctx context.Context, column string, value string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + column + ` = $1;`

	rows, err := r.Pool.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query category by %s: %w", column, err)
	}

	m, err := pgx.CollectOneRow(rows, scanCategoryRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan category by %s: %w", column, err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// FindSubcategoryByID retrieves a subcategory by id.
func (r *PgxCategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE subcategory_id = $1;`

	rows, err := r.Pool.Query(ctx, query, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategory %s: %w", subcategoryID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanSubcategoryRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan subcategory %s: %w", subcategoryID, err)
	}

	subcategory := mapping.ToDomainSubcategory(m)
	return &subcategory, nil
}

// FindSubcategoryByName retrieves a subcategory by name within one category.
func (r *PgxCategoryRepository) FindSubcategoryByName(ctx context.Context, categoryID string, name string) (*domain.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE category_id = $1 AND LOWER(name) = LOWER($2);`

	rows, err := r.Pool.Query(ctx, query, categoryID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategory by name: %w", err)
	}

	m, err := pgx.CollectOneRow(rows, scanSubcategoryRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan subcategory by name: %w", err)
	}

	subcategory := mapping.ToDomainSubcategory(m)
	return &subcategory, nil
}

func scanCategoryRow(row pgx.CollectableRow) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Kind,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanSubcategoryRow(row pgx.CollectableRow) (models.Subcategory, error) {
	var m models.Subcategory
	err := row.Scan(
		&m.SubcategoryID,
		&m.CategoryID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
