package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
	"github.com/hoorayhoa/hoa-api/internal/store"
)

// UserService provides member lookup, creation and removal.
// Lookups report absence as a nil user with a nil error.
type UserService interface {
	// FindAll returns every member.
	FindAll(ctx context.Context) ([]*domain.User, error)

	// FindOne returns the member with the given ID, or nil.
	FindOne(ctx context.Context, id int64) (*domain.User, error)

	// FindOneByEmail returns the member with exactly this email, or nil.
	// An empty email fails with ErrEmailRequired without touching storage.
	FindOneByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create persists a member with an already hashed password, linking the
	// address when it is non-nil and already persisted.
	Create(ctx context.Context, email, hashedPassword string, address *domain.Address) (*domain.User, error)

	// Remove deletes the member and its address. A missing ID is not an error.
	Remove(ctx context.Context, id int64) error

	// WithTx returns a copy of the service bound to the transaction.
	WithTx(tx *sql.Tx) UserService
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// FindAll implements UserService.
func (s *UserServiceImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindOne implements UserService.
func (s *UserServiceImpl) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// FindOneByEmail implements UserService.
func (s *UserServiceImpl) FindOneByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve user by email", "error", err)
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	return user, nil
}

// Create implements UserService.
func (s *UserServiceImpl) Create(
	ctx context.Context,
	email, hashedPassword string,
	address *domain.Address,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, hashedPassword, address)
	if err != nil {
		log.Debug("user rejected by validation", "error", err)
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		} else {
			log.Error("failed to save user to database", "error", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created", "user_id", user.ID)
	return user, nil
}

// Remove implements UserService.
func (s *UserServiceImpl) Remove(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("remove requested for missing user", "user_id", id)
			return nil
		}
		log.Error("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// WithTx implements UserService.
func (s *UserServiceImpl) WithTx(tx *sql.Tx) UserService {
	return &UserServiceImpl{
		userStore: s.userStore.WithTx(tx),
		logger:    s.logger,
	}
}
