package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pesobooks/bookkeeping_app/internal/apperrors"
	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/pesobooks/bookkeeping_app/internal/core/ports/services"
	"github.com/pesobooks/bookkeeping_app/internal/core/services"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
	"github.com/pesobooks/bookkeeping_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Ana Reyes", Email: "ana@example.com", Password: "correct horse"}

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("correct horse", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct horse", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Ana Reyes", Email: "ana@example.com", Password: "correct horse"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterUser(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: uuid.NewString(), Email: "ana@example.com", PasswordHash: hash}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ana@example.com", "correct horse")

	suite.Require().NoError(err)
	suite.Equal("ana@example.com", user.Email)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: uuid.NewString(), PasswordHash: hash}, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "ana@example.com", "wrong horse")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIndistinguishable() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever password")

	// Same error as a wrong password so account existence does not leak.
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
