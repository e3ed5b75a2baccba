package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/mocks"
	"github.com/hoorayhoa/hoa-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressService_Create(t *testing.T) {
	t.Parallel()

	in := service.AddressInput{
		Address1:   " 1 Main St ",
		Address2:   "Unit 4",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}

	t.Run("persists and returns id", func(t *testing.T) {
		t.Parallel()
		addresses := mocks.NewMockAddressStore()
		svc := service.NewAddressService(addresses, quietLogger())

		address, err := svc.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, int64(1), address.ID)
		assert.Equal(t, "1 Main St", address.Address1)
		assert.Equal(t, "Unit 4", address.Address2)
		assert.Empty(t, address.Address3)
		assert.Same(t, address, addresses.Addresses[1])
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		addresses := mocks.NewMockAddressStore()
		svc := service.NewAddressService(addresses, quietLogger())

		bad := in
		bad.Country = ""
		_, err := svc.Create(context.Background(), bad)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "country", vErr.Field)
		assert.Equal(t, 0, addresses.CreateCalls)
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		t.Parallel()
		dbErr := errors.New("disk full")
		addresses := mocks.NewMockAddressStore()
		addresses.CreateFn = func(context.Context, *domain.Address) error { return dbErr }
		svc := service.NewAddressService(addresses, quietLogger())

		_, err := svc.Create(context.Background(), in)

		assert.ErrorIs(t, err, dbErr)
	})
}
