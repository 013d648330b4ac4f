package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	DocumentRepo    DocumentRepository
	TransactionRepo TransactionRepository
	CompanyRepo     CompanyRepository
	CategoryRepo    CategoryRepository
	UserRepo        UserRepository
	ReportingRepo   ReportingRepository
}
