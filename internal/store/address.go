package store

import (
	"context"
	"database/sql"

	"github.com/hoorayhoa/hoa-api/internal/domain"
)

// AddressStore defines the interface for postal address persistence.
type AddressStore interface {
	// Create saves a new address and sets its ID.
	Create(ctx context.Context, address *domain.Address) error

	// WithTx returns a new AddressStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AddressStore
}
