package services

import (
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The
// lifecycle orchestrator composes the registry, analysis and
// reconciliation facades rather than reaching into repositories itself.
func NewServiceContainer(repos portsrepo.RepositoryProvider, blobs ports.BlobStoreProvider, llm ports.LLMClient, lifecycleCfg LifecycleConfig) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)
	companySvc := NewCompanyService(repos.CompanyRepo)
	documentSvc := NewDocumentService(repos.DocumentRepo, repos.CompanyRepo)
	analysisSvc := NewAnalysisService(llm, repos.CategoryRepo)
	reconciliationSvc := NewReconciliationService(repos.TransactionRepo, repos.CategoryRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	lifecycleSvc := NewDocumentLifecycleService(documentSvc, analysisSvc, reconciliationSvc, blobs, lifecycleCfg)
	reportingSvc := NewReportingService(repos.ReportingRepo, repos.CompanyRepo)

	return &portssvc.ServiceContainer{
		User:           userSvc,
		Company:        companySvc,
		Document:       documentSvc,
		Lifecycle:      lifecycleSvc,
		Analysis:       analysisSvc,
		Reconciliation: reconciliationSvc,
		Category:       categorySvc,
		Reporting:      reportingSvc,
	}
}
