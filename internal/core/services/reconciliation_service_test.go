package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/pesobooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/core/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewReconciliationService(suite.mockTxnRepo, suite.mockCategoryRepo)
}

func extractedItem(date, description string, amount float64) domain.ExtractedTransaction {
	return domain.ExtractedTransaction{
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Direction:   "DEBIT",
		Confidence:  0.8,
	}
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_SkipsMalformedItems() {
	ctx := context.Background()
	doc := domain.AccountingDocument{DocumentID: uuid.NewString(), CompanyID: uuid.NewString()}
	result := domain.AnalysisResult{
		Transactions: []domain.ExtractedTransaction{
			extractedItem("2025-03-01", "MERALCO BILL", 1200.50),
			extractedItem("2025-03-05", "GLOBE TELECOM", 999.00),
			extractedItem("not-a-date", "BROKEN ROW", 10.00),
			extractedItem("2025-03-12", "OFFICE RENT", 25000.00),
			extractedItem("2025-03-20", "BANK FEE", 150.00),
		},
	}

	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 4
	})).Return(nil).Once()

	txns, itemErrors, err := suite.service.IngestTransactions(ctx, doc, result, "worker")

	suite.Require().NoError(err)
	suite.Len(txns, 4)
	suite.Require().Len(itemErrors, 1)
	suite.Equal(2, itemErrors[0].Index)
	suite.Contains(itemErrors[0].Reason, "date")
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_ParseFailedResultRejected() {
	doc := domain.AccountingDocument{DocumentID: uuid.NewString()}
	result := domain.AnalysisResult{ParseError: "model output is not valid JSON"}

	_, _, err := suite.service.IngestTransactions(context.Background(), doc, result, "worker")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_EmptyResultSavesNothing() {
	doc := domain.AccountingDocument{DocumentID: uuid.NewString()}

	txns, itemErrors, err := suite.service.IngestTransactions(context.Background(), doc, domain.AnalysisResult{}, "worker")

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.Empty(itemErrors)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_NegativeAmountNormalized() {
	ctx := context.Background()
	doc := domain.AccountingDocument{DocumentID: uuid.NewString(), CompanyID: uuid.NewString()}
	item := domain.ExtractedTransaction{
		Date:        "2025-03-01",
		Description: "ATM WITHDRAWAL",
		Amount:      decimal.NewFromFloat(-500.00),
		Confidence:  0.7,
	}
	result := domain.AnalysisResult{Transactions: []domain.ExtractedTransaction{item}}

	var saved []domain.Transaction
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Transaction) }).
		Return(nil).Once()

	_, itemErrors, err := suite.service.IngestTransactions(ctx, doc, result, "worker")

	suite.Require().NoError(err)
	suite.Empty(itemErrors)
	suite.Require().Len(saved, 1)
	suite.True(saved[0].Amount.Equal(decimal.NewFromFloat(500.00)))
	suite.Equal(domain.Debit, saved[0].Direction)
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_ConfidenceClamped() {
	ctx := context.Background()
	doc := domain.AccountingDocument{DocumentID: uuid.NewString()}
	item := extractedItem("2025-03-01", "SUPPLIES", 75.00)
	item.Confidence = 1.7
	result := domain.AnalysisResult{Transactions: []domain.ExtractedTransaction{item}}

	var saved []domain.Transaction
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Transaction) }).
		Return(nil).Once()

	_, _, err := suite.service.IngestTransactions(ctx, doc, result, "worker")

	suite.Require().NoError(err)
	suite.Require().Len(saved, 1)
	suite.Require().NotNil(saved[0].Confidence)
	suite.Equal(1.0, *saved[0].Confidence)
}

func (suite *ReconciliationServiceTestSuite) TestIngestTransactions_SoftCategoryResolution() {
	ctx := context.Background()
	doc := domain.AccountingDocument{DocumentID: uuid.NewString()}
	known := extractedItem("2025-03-01", "PAYROLL RUN", 1500.00)
	known.Category = "Payroll"
	known.Subcategory = "Salaries"
	unknown := extractedItem("2025-03-02", "MYSTERY CHARGE", 42.00)
	unknown.Category = "Not A Category"
	result := domain.AnalysisResult{Transactions: []domain.ExtractedTransaction{known, unknown}}

	catID := uuid.NewString()
	subID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByName", ctx, "Payroll").
		Return(&domain.Category{CategoryID: catID, Name: "Payroll", Kind: "EXPENSE"}, nil).Once()
	suite.mockCategoryRepo.On("FindSubcategoryByName", ctx, catID, "Salaries").
		Return(&domain.Subcategory{SubcategoryID: subID, CategoryID: catID, Name: "Salaries"}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByName", ctx, "Not A Category").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved []domain.Transaction
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Transaction) }).
		Return(nil).Once()

	_, itemErrors, err := suite.service.IngestTransactions(ctx, doc, result, "worker")

	suite.Require().NoError(err)
	// An unresolvable category name is soft: the row is kept, just uncategorized.
	suite.Empty(itemErrors)
	suite.Require().Len(saved, 2)
	suite.Equal(catID, saved[0].CategoryID)
	suite.Equal(subID, saved[0].SubcategoryID)
	suite.Empty(saved[1].CategoryID)
	suite.False(saved[0].IsReconciled)
}

func (suite *ReconciliationServiceTestSuite) TestReconcileTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	catID := uuid.NewString()
	subID := uuid.NewString()
	actor := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).
		Return(&domain.Transaction{TransactionID: txnID, Description: "OFFICE RENT"}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, catID).
		Return(&domain.Category{CategoryID: catID, Name: "Rent and Utilities", Kind: "EXPENSE"}, nil).Once()
	suite.mockCategoryRepo.On("FindSubcategoryByID", ctx, subID).
		Return(&domain.Subcategory{SubcategoryID: subID, CategoryID: catID, Name: "Office Rent"}, nil).Once()
	suite.mockTxnRepo.On("UpdateReconciliation", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.ReconcileTransaction(ctx, txnID, dto.ReconcileTransactionRequest{
		CategoryID:    catID,
		SubcategoryID: subID,
	}, actor)

	suite.Require().NoError(err)
	suite.True(txn.IsReconciled)
	suite.Equal(catID, txn.CategoryID)
	suite.Equal(subID, txn.SubcategoryID)
	suite.Require().NotNil(txn.Confidence)
	suite.Equal(1.0, *txn.Confidence)
	suite.Require().NotNil(txn.ReconciledAt)
	suite.Equal(actor, txn.ReconciledBy)
	suite.WithinDuration(time.Now(), *txn.ReconciledAt, time.Second)
}

func (suite *ReconciliationServiceTestSuite) TestReconcileTransaction_SubcategoryUnderWrongCategory() {
	ctx := context.Background()
	txnID := uuid.NewString()
	catID := uuid.NewString()
	subID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).
		Return(&domain.Transaction{TransactionID: txnID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, catID).
		Return(&domain.Category{CategoryID: catID}, nil).Once()
	suite.mockCategoryRepo.On("FindSubcategoryByID", ctx, subID).
		Return(&domain.Subcategory{SubcategoryID: subID, CategoryID: uuid.NewString()}, nil).Once()

	_, err := suite.service.ReconcileTransaction(ctx, txnID, dto.ReconcileTransactionRequest{
		CategoryID:    catID,
		SubcategoryID: subID,
	}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateReconciliation")
}

func (suite *ReconciliationServiceTestSuite) TestReconcileTransaction_LatestWriteWins() {
	ctx := context.Background()
	txnID := uuid.NewString()
	oldCat := uuid.NewString()
	newCat := uuid.NewString()
	previously := time.Now().Add(-24 * time.Hour)
	conf := 1.0

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).
		Return(&domain.Transaction{
			TransactionID: txnID,
			CategoryID:    oldCat,
			Confidence:    &conf,
			IsReconciled:  true,
			ReconciledAt:  &previously,
			ReconciledBy:  "first-reviewer",
		}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, newCat).
		Return(&domain.Category{CategoryID: newCat}, nil).Once()
	suite.mockTxnRepo.On("UpdateReconciliation", ctx, mock.Anything).Return(nil).Once()

	txn, err := suite.service.ReconcileTransaction(ctx, txnID, dto.ReconcileTransactionRequest{CategoryID: newCat}, "second-reviewer")

	suite.Require().NoError(err)
	suite.Equal(newCat, txn.CategoryID)
	suite.Equal("second-reviewer", txn.ReconciledBy)
	suite.True(txn.ReconciledAt.After(previously))
}

func (suite *ReconciliationServiceTestSuite) TestReconcileTransaction_UnknownCategory() {
	ctx := context.Background()
	txnID := uuid.NewString()
	catID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).
		Return(&domain.Transaction{TransactionID: txnID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, catID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ReconcileTransaction(ctx, txnID, dto.ReconcileTransactionRequest{CategoryID: catID}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestListTransactions_RequiresScope() {
	_, err := suite.service.ListTransactions(context.Background(), portsrepo.TransactionFilter{})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
