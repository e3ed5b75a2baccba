package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
	"github.com/hoorayhoa/hoa-api/internal/store"
)

// RegisterInput carries a registration request after transport decoding.
type RegisterInput struct {
	Email    string
	Password string
	Address  AddressInput
}

// AuthService registers members and exchanges credentials for tokens.
type AuthService interface {
	// Register creates the member and its address atomically and returns the
	// new member with a signed token. Returns ErrEmailAlreadyExists when the
	// email is taken; nothing is written in that case.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)

	// Login verifies the credentials and returns a signed token. Unknown email
	// and wrong password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}

type authServiceImpl struct {
	db        *sql.DB
	users     UserService
	addresses AddressService
	hasher    auth.PasswordHasher
	tokens    auth.JWTService
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService. db is used to open the
// registration transaction.
func NewAuthService(
	db *sql.DB,
	users UserService,
	addresses AddressService,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (AuthService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if addresses == nil {
		return nil, domain.NewValidationError("addresses", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		db:        db,
		users:     users,
		addresses: addresses,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With(slog.String("component", "auth_service")),
	}, nil
}

// Register implements AuthService.
func (s *authServiceImpl) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.users.FindOneByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		log.Debug("registration rejected: email already exists")
		return nil, "", ErrEmailAlreadyExists
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, "", domain.NewValidationError("password", "is too long", domain.ErrValidation)
		}
		log.Error("failed to hash password", "error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	var user *domain.User
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		address, err := s.addresses.WithTx(tx).Create(ctx, in.Address)
		if err != nil {
			return err
		}

		user, err = s.users.WithTx(tx).Create(ctx, in.Email, hashed, address)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration lost race on unique email index")
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token after registration", "error", err, "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("member registered", "user_id", user.ID)
	return user, token, nil
}

// Login implements AuthService.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.FindOneByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		log.Debug("login failed: unknown email")
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("member logged in", "user_id", user.ID)
	return token, nil
}
