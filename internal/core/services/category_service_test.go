package services_test

import (
	"context"
	"testing"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
}

func (suite *CategoryServiceTestSuite) TestListTaxonomy() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("ListCategories", ctx).Return([]domain.Category{
		{CategoryID: "cat-1", Name: "Payroll", Kind: "EXPENSE"},
		{CategoryID: "cat-2", Name: "Sales Revenue", Kind: "REVENUE"},
	}, nil).Once()
	suite.mockCategoryRepo.On("ListSubcategories", ctx, "cat-1").Return([]domain.Subcategory{
		{SubcategoryID: "sub-1", CategoryID: "cat-1", Name: "Salaries"},
		{SubcategoryID: "sub-2", CategoryID: "cat-1", Name: "Benefits"},
	}, nil).Once()
	suite.mockCategoryRepo.On("ListSubcategories", ctx, "cat-2").Return([]domain.Subcategory{}, nil).Once()

	taxonomy, err := suite.service.ListTaxonomy(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(taxonomy, 2)
	suite.Equal("Payroll", taxonomy[0].Name)
	suite.Len(taxonomy[0].Subcategories, 2)
	suite.Empty(taxonomy[1].Subcategories)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListTaxonomy_RepoError() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("ListCategories", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListTaxonomy(ctx)

	suite.Require().Error(err)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
