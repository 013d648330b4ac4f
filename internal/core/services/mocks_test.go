package services_test

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/core/ports"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.AccountingDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.AccountingDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.AccountingDocument, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingDocument), args.Error(1)
}

func (m *MockDocumentRepository) UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, updatedBy string) error {
	args := m.Called(ctx, documentID, status, errorMessage, updatedBy)
	return args.Error(0)
}

func (m *MockDocumentRepository) SaveAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, updatedBy string) error {
	args := m.Called(ctx, documentID, result, status, errorMessage, updatedBy)
	return args.Error(0)
}

func (m *MockDocumentRepository) ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, updatedBy string) error {
	args := m.Called(ctx, documentID, from, updatedBy)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateReconciliation(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *MockCategoryRepository) FindSubcategoryByName(ctx context.Context, categoryID string, name string) (*domain.Subcategory, error) {
	args := m.Called(ctx, categoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListDocumentDigests(ctx context.Context, companyID string) ([]domain.DocumentDigest, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentDigest), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Capability mocks ---

type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string, document []byte, mimeType string) (*ports.LLMResponse, error) {
	args := m.Called(ctx, prompt, document, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.LLMResponse), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, data []byte, meta ports.BlobMetadata) (string, error) {
	args := m.Called(ctx, data, meta)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Get(ctx context.Context, handle string) ([]byte, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

type MockBlobStoreProvider struct {
	mock.Mock
}

func (m *MockBlobStoreProvider) For(storageType domain.StorageType) (ports.BlobStore, error) {
	args := m.Called(storageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.BlobStore), args.Error(1)
}

// --- Service facade mocks for the lifecycle orchestrator ---

type MockDocumentSvc struct {
	mock.Mock
}

func (m *MockDocumentSvc) CreateDocument(ctx context.Context, doc domain.AccountingDocument) (*domain.AccountingDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingDocument), args.Error(1)
}

func (m *MockDocumentSvc) GetDocument(ctx context.Context, documentID string) (*domain.AccountingDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingDocument), args.Error(1)
}

func (m *MockDocumentSvc) ListDocuments(ctx context.Context, companyID string, status *domain.ProcessingStatus) ([]domain.AccountingDocument, error) {
	args := m.Called(ctx, companyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingDocument), args.Error(1)
}

func (m *MockDocumentSvc) UpdateStatus(ctx context.Context, documentID string, status domain.ProcessingStatus, errorMessage string, actor string) error {
	args := m.Called(ctx, documentID, status, errorMessage, actor)
	return args.Error(0)
}

func (m *MockDocumentSvc) AttachAnalysisResult(ctx context.Context, documentID string, result domain.AnalysisResult, status domain.ProcessingStatus, errorMessage string, actor string) error {
	args := m.Called(ctx, documentID, result, status, errorMessage, actor)
	return args.Error(0)
}

func (m *MockDocumentSvc) ClaimProcessing(ctx context.Context, documentID string, from []domain.ProcessingStatus, actor string) error {
	args := m.Called(ctx, documentID, from, actor)
	return args.Error(0)
}

func (m *MockDocumentSvc) DeleteRecord(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

type MockAnalysisSvc struct {
	mock.Mock
}

func (m *MockAnalysisSvc) Analyze(ctx context.Context, document []byte, contentType string, docType domain.DocumentType) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, document, contentType, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

type MockReconciliationSvc struct {
	mock.Mock
}

func (m *MockReconciliationSvc) IngestTransactions(ctx context.Context, doc domain.AccountingDocument, result domain.AnalysisResult, actor string) ([]domain.Transaction, []domain.ItemError, error) {
	args := m.Called(ctx, doc, result, actor)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var itemErrs []domain.ItemError
	if args.Get(1) != nil {
		itemErrs = args.Get(1).([]domain.ItemError)
	}
	return txns, itemErrs, args.Error(2)
}

func (m *MockReconciliationSvc) ReconcileTransaction(ctx context.Context, transactionID string, req dto.ReconcileTransactionRequest, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReconciliationSvc) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReconciliationSvc) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
