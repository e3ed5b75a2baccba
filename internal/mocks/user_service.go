package mocks

import (
	"context"
	"database/sql"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service"
)

// MockUserService implements service.UserService for testing.
// Unset functions return zero values.
type MockUserService struct {
	FindAllFn        func(ctx context.Context) ([]*domain.User, error)
	FindOneFn        func(ctx context.Context, id int64) (*domain.User, error)
	FindOneByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateFn         func(ctx context.Context, email, hashedPassword string, address *domain.Address) (*domain.User, error)
	RemoveFn         func(ctx context.Context, id int64) error

	RemovedIDs []int64
}

// FindAll implements the service.UserService interface
func (m *MockUserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return []*domain.User{}, nil
}

// FindOne implements the service.UserService interface
func (m *MockUserService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, id)
	}
	return nil, nil
}

// FindOneByEmail implements the service.UserService interface
func (m *MockUserService) FindOneByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindOneByEmailFn != nil {
		return m.FindOneByEmailFn(ctx, email)
	}
	return nil, nil
}

// Create implements the service.UserService interface
func (m *MockUserService) Create(
	ctx context.Context,
	email, hashedPassword string,
	address *domain.Address,
) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, email, hashedPassword, address)
	}
	return domain.NewUser(email, hashedPassword, address)
}

// Remove implements the service.UserService interface
func (m *MockUserService) Remove(ctx context.Context, id int64) error {
	m.RemovedIDs = append(m.RemovedIDs, id)
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	return nil
}

// WithTx implements the service.UserService interface
func (m *MockUserService) WithTx(*sql.Tx) service.UserService {
	return m
}

var _ service.UserService = (*MockUserService)(nil)
