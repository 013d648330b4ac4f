package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/models"
	"github.com/pesobooks/bookkeeping_app/internal/utils/mapping"
)

const companyColumns = `company_id, name, legal_name, slug, tax_id, currency, fiscal_year_end, status,
		street, city, province, postal_code, country, contact_name, contact_email, contact_phone,
		created_at, created_by, last_updated_at, last_updated_by`

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for client companies.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

// SaveCompany inserts a new company. Name and slug uniqueness is enforced
// by the database and surfaced as ErrDuplicate.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.LegalName, m.Slug, m.TaxID, m.Currency, m.FiscalYearEnd, m.Status,
		m.Street, m.City, m.Province, m.PostalCode, m.Country, m.ContactName, m.ContactEmail, m.ContactPhone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save company %s: %w", m.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its id.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return r.findCompany(ctx, `company_id`, companyID)
}

// FindCompanyBySlug retrieves a company by its unique slug.
func (r *PgxCompanyRepository) FindCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return r.findCompany(ctx, `slug`, slug)
}

func (r *PgxCompanyRepository) findCompany(ctx context.Context, column string, value string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + column + ` = $1;`

	rows, err := r.Pool.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query company by %s: %w", column, err)
	}

	m, err := pgx.CollectOneRow(rows, scanCompanyRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company by %s: %w", column, err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// ListCompanies retrieves all companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}

	ms, err := pgx.CollectRows(rows, scanCompanyRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return mapping.ToDomainCompanySlice(ms), nil
}

// UpdateCompany persists mutable company fields.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		UPDATE companies
		SET legal_name = $2, tax_id = $3, currency = $4, fiscal_year_end = $5, status = $6,
			street = $7, city = $8, province = $9, postal_code = $10, country = $11,
			contact_name = $12, contact_email = $13, contact_phone = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.LegalName, m.TaxID, m.Currency, m.FiscalYearEnd, m.Status,
		m.Street, m.City, m.Province, m.PostalCode, m.Country,
		m.ContactName, m.ContactEmail, m.ContactPhone,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", m.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanCompanyRow scans one companies row into its model struct.
func scanCompanyRow(row pgx.CollectableRow) (models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.LegalName,
		&m.Slug,
		&m.TaxID,
		&m.Currency,
		&m.FiscalYearEnd,
		&m.Status,
		&m.Street,
		&m.City,
		&m.Province,
		&m.PostalCode,
		&m.Country,
		&m.ContactName,
		&m.ContactEmail,
		&m.ContactPhone,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
