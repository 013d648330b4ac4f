package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	documentRepo := newPgxDocumentRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		DocumentRepo:    documentRepo,
		TransactionRepo: transactionRepo,
		CompanyRepo:     companyRepo,
		CategoryRepo:    categoryRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
