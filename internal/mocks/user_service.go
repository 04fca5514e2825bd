package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
	"github.com/lingokit/lingo-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Function fields for customizable behavior
	RegisterFn     func(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

// Register implements the service.UserService interface
func (m *MockUserService) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return m.User, m.Err
}

// Authenticate implements the service.UserService interface
func (m *MockUserService) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.User, m.Err
}

// GetUser implements the service.UserService interface
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

// Ensure MockUserService implements the service.UserService interface
var _ service.UserService = (*MockUserService)(nil)
