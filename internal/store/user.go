package store

import (
	"context"
	"database/sql"

	"github.com/hoorayhoa/hoa-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Returned users have their Address populated when one is linked.
type UserStore interface {
	// Create saves a new user and sets its ID and CreatedAt.
	// The user's AddressID, if set, must reference an existing address.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user and the address it owns.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
