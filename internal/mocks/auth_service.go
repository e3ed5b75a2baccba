package mocks

import (
	"context"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service"
)

// MockAuthService implements service.AuthService for testing
type MockAuthService struct {
	RegisterFn func(ctx context.Context, in service.RegisterInput) (*domain.User, string, error)
	LoginFn    func(ctx context.Context, email, password string) (string, error)

	// RegisterCalledWith records the last input passed to Register
	RegisterCalledWith service.RegisterInput
}

// Register implements the service.AuthService interface
func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, string, error) {
	m.RegisterCalledWith = in
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, in)
	}
	return nil, "", nil
}

// Login implements the service.AuthService interface
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return "", nil
}

var _ service.AuthService = (*MockAuthService)(nil)
