package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
	"github.com/hoorayhoa/hoa-api/internal/store"
)

// AddressInput carries the postal address lines submitted at registration.
type AddressInput struct {
	Address1   string
	Address2   string
	Address3   string
	City       string
	State      string
	PostalCode string
	Country    string
}

// AddressService persists postal addresses.
type AddressService interface {
	// Create validates and persists an address, returning it with its ID.
	Create(ctx context.Context, in AddressInput) (*domain.Address, error)

	// WithTx returns a copy of the service bound to the transaction.
	WithTx(tx *sql.Tx) AddressService
}

type addressServiceImpl struct {
	addresses store.AddressStore
	logger    *slog.Logger
}

// NewAddressService creates a new AddressService
func NewAddressService(addresses store.AddressStore, logger *slog.Logger) AddressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &addressServiceImpl{
		addresses: addresses,
		logger:    logger.With(slog.String("component", "address_service")),
	}
}

// Create implements AddressService.
func (s *addressServiceImpl) Create(ctx context.Context, in AddressInput) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	address, err := domain.NewAddress(
		in.Address1,
		in.Address2,
		in.Address3,
		in.City,
		in.State,
		in.PostalCode,
		in.Country,
	)
	if err != nil {
		log.Debug("address rejected by validation", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.addresses.Create(ctx, address); err != nil {
		log.Error("failed to persist address", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// WithTx implements AddressService.
func (s *addressServiceImpl) WithTx(tx *sql.Tx) AddressService {
	return &addressServiceImpl{
		addresses: s.addresses.WithTx(tx),
		logger:    s.logger,
	}
}
