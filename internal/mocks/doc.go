// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields (CreateFn, GetByIDFn, ...) that override
// the default behavior when set. Without overrides the store mocks keep an
// in-memory map so that services can be exercised end to end:
//
//	users := mocks.NewMockUserStore()
//	svc := service.NewUserService(users, nil)
//
// TestifyMockUserStore is the testify/mock flavor for tests that assert on
// exact calls.
package mocks
