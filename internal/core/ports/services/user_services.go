package services

import (
	"context"

	"github.com/pesobooks/bookkeeping_app/internal/core/domain"
	"github.com/pesobooks/bookkeeping_app/internal/dto"
)

// UserSvcFacade manages operator accounts. Token issuance lives in the
// handler layer with the config; the service only verifies credentials.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
