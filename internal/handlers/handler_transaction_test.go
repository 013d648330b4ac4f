package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/handlers"
	"github.com/pesobooks/bookkeeping_app/internal/utils"
	"github.com/pesobooks/bookkeeping_app/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) IngestTransactions(ctx context.Context, doc domain.AccountingDocument, result domain.AnalysisResult, actor string) ([]domain.Transaction, []domain.ItemError, error) {
	args := m.Called(ctx, doc, result, actor)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var itemErrors []domain.ItemError
	if args.Get(1) != nil {
		itemErrors = args.Get(1).([]domain.ItemError)
	}
	return txns, itemErrors, args.Error(2)
}

func (m *MockReconciliationService) ReconcileTransaction(ctx context.Context, transactionID string, req dto.ReconcileTransactionRequest, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReconciliationService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReconciliationService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReconciliationService
	cfg         *config.Config
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "pba-test",
		IsProduction: true, // Skips swagger route setup
	}

	suite.mockService = new(MockReconciliationService)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Reconciliation: suite.mockService,
	})
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	txnID := uuid.NewString()
	userID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: txnID,
		DocumentID:    uuid.NewString(),
		TxnDate:       time.Now(),
		Description:   "OFFICE RENT",
		Amount:        decimal.NewFromInt(25000),
		Direction:     domain.Debit,
	}

	suite.mockService.On("GetTransaction", mock.Anything, txnID).Return(txn, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+txnID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(txnID, body.TransactionID)
	suite.Equal("OFFICE RENT", body.Description)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()

	suite.mockService.On("GetTransaction", mock.Anything, txnID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+txnID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetTransaction")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterPassthrough() {
	companyID := uuid.NewString()

	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.CompanyID == companyID && f.IsReconciled != nil && *f.IsReconciled == false
	})).Return([]domain.Transaction{}, nil).Once()

	url := fmt.Sprintf("/api/v1/transactions?companyID=%s&reconciled=false", companyID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadReconciledParam() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?reconciled=maybe", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestReconcileTransaction_Success() {
	txnID := uuid.NewString()
	userID := uuid.NewString()
	catID := uuid.NewString()
	reconciledAt := time.Now()
	conf := 1.0
	txn := &domain.Transaction{
		TransactionID: txnID,
		CategoryID:    catID,
		Confidence:    &conf,
		IsReconciled:  true,
		ReconciledAt:  &reconciledAt,
		ReconciledBy:  userID,
	}

	suite.mockService.On("ReconcileTransaction", mock.Anything, txnID,
		dto.ReconcileTransactionRequest{CategoryID: catID}, userID).Return(txn, nil).Once()

	payload, _ := json.Marshal(dto.ReconcileTransactionRequest{CategoryID: catID})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+txnID+"/reconcile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.IsReconciled)
	suite.Equal(catID, body.CategoryID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestReconcileTransaction_InvalidBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+uuid.NewString()+"/reconcile",
		bytes.NewReader([]byte(`{"categoryID":"not-a-uuid"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ReconcileTransaction")
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
