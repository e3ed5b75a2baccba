package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
	"github.com/hoorayhoa/hoa-api/internal/store"
)

// PostgresAddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

var _ store.AddressStore = (*PostgresAddressStore)(nil)

// Create implements store.AddressStore.Create.
// Empty optional lines are stored as NULL.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO addresses (address1, address2, address3, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		address.Address1,
		nullString(address.Address2),
		nullString(address.Address3),
		address.City,
		address.State,
		address.PostalCode,
		address.Country,
	).Scan(&address.ID)
	if err != nil {
		log.Error("failed to create address", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("address created", slog.Int64("address_id", address.ID))
	return nil
}

// WithTx implements store.AddressStore.WithTx.
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &PostgresAddressStore{
		db:     tx,
		logger: s.logger,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
