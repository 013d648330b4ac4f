package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockCompanyRepo   *MockCompanyRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockCompanyRepo)
}

func (suite *ReportingServiceTestSuite) TestCompanyDocumentsReport_Summary() {
	ctx := context.Background()
	companyID := uuid.NewString()
	digests := []domain.DocumentDigest{
		{DocumentID: uuid.NewString(), Month: 3, Year: 2025, ProcessingStatus: domain.StatusCompleted, TransactionCount: 12, HasPLData: true},
		{DocumentID: uuid.NewString(), Month: 2, Year: 2025, ProcessingStatus: domain.StatusCompleted, TransactionCount: 0, HasZeroPL: true},
		{DocumentID: uuid.NewString(), Month: 1, Year: 2025, ProcessingStatus: domain.StatusFailed, ErrorMessage: "model output is not valid JSON"},
		{DocumentID: uuid.NewString(), Month: 12, Year: 2024, ProcessingStatus: domain.StatusStored},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockReportingRepo.On("ListDocumentDigests", ctx, companyID).Return(digests, nil).Once()

	report, err := suite.service.CompanyDocumentsReport(ctx, companyID)

	suite.Require().NoError(err)
	suite.Equal(companyID, report.CompanyID)
	suite.Len(report.Documents, 4)
	suite.Equal(4, report.Summary.Total)
	suite.Equal(2, report.Summary.Completed)
	suite.Equal(1, report.Summary.Failed)
	suite.Equal(1, report.Summary.Stored)
	suite.Equal(1, report.Summary.WithPLData)
	// The all-zero statement is counted separately; it is not "no data".
	suite.Equal(1, report.Summary.WithZeroPL)
	suite.Equal(1, report.Summary.WithTransactions)
}

func (suite *ReportingServiceTestSuite) TestCompanyDocumentsReport_EmptyCompany() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockReportingRepo.On("ListDocumentDigests", ctx, companyID).Return([]domain.DocumentDigest{}, nil).Once()

	report, err := suite.service.CompanyDocumentsReport(ctx, companyID)

	suite.Require().NoError(err)
	suite.Empty(report.Documents)
	suite.Equal(domain.DocumentSummary{}, report.Summary)
}

func (suite *ReportingServiceTestSuite) TestCompanyDocumentsReport_UnknownCompany() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CompanyDocumentsReport(ctx, companyID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "ListDocumentDigests")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
