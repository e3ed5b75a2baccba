package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/platform/postgres"
	"github.com/hoorayhoa/hoa-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func newPgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "users",
		ColumnName:     "email",
		ConstraintName: constraint,
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	genericErr := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "no_rows",
			err:    sql.ErrNoRows,
			target: store.ErrNotFound,
		},
		{
			name:   "email_unique_violation",
			err:    newPgError("23505", "users_email_key"),
			target: store.ErrEmailExists,
		},
		{
			name:   "other_unique_violation",
			err:    newPgError("23505", "addresses_pkey"),
			target: store.ErrDuplicate,
		},
		{
			name:   "foreign_key_violation",
			err:    newPgError("23503", "users_address_id_fkey"),
			target: store.ErrInvalidEntity,
		},
		{
			name:   "check_violation",
			err:    newPgError("23514", "users_role_check"),
			target: store.ErrInvalidEntity,
		},
		{
			name:   "not_null_violation",
			err:    newPgError("23502", ""),
			target: store.ErrInvalidEntity,
		},
		{
			name:   "wrapped_unique_violation",
			err:    fmt.Errorf("insert: %w", newPgError("23505", "users_email_key")),
			target: store.ErrEmailExists,
		},
		{
			name:   "unmapped_error",
			err:    genericErr,
			target: genericErr,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tt.err), tt.target)
		})
	}

	assert.NoError(t, postgres.MapError(nil))
}

func TestMapError_OtherUniqueIsNotEmailExists(t *testing.T) {
	t.Parallel()

	err := postgres.MapError(newPgError("23505", "addresses_pkey"))
	assert.False(t, errors.Is(err, store.ErrEmailExists))
}
