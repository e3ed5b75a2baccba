package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	CreateFn func(ctx context.Context, address *domain.Address) error

	Addresses   map[int64]*domain.Address
	LastID      int64
	CreateCalls int

	mu sync.Mutex
}

// NewMockAddressStore creates a new mock store with initialized defaults
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
	}
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastID++
	address.ID = m.LastID
	m.Addresses[address.ID] = address
	return nil
}

// WithTx implements the AddressStore interface and returns the mock itself.
func (m *MockAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return m
}

var _ store.AddressStore = (*MockAddressStore)(nil)
