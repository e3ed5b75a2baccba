package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hoorayhoa/hoa-api/internal/api/shared"
	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/mocks"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberFixture() map[int64]*domain.User {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return map[int64]*domain.User{
		1: {ID: 1, Email: "admin@hoa.test", HashedPassword: "h1", Role: domain.RoleAdmin, CreatedAt: created},
		2: {
			ID: 2, Email: "jane@example.com", HashedPassword: "h2", Role: domain.RoleUser, CreatedAt: created,
			Address: &domain.Address{ID: 5, Address1: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"},
		},
	}
}

func newUserRouter(users *mocks.MockUserService, callerID int64) http.Handler {
	h := NewUserHandler(users, quietLogger())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if callerID != 0 {
				ctx := context.WithValue(req.Context(), shared.ClaimsContextKey, &auth.Claims{UserID: callerID})
				req = req.WithContext(ctx)
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/users", h.List)
	r.Get("/users/me", h.Me)
	r.Get("/users/{id}", h.Get)
	r.Delete("/users/{id}", h.Delete)
	return r
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func findIn(members map[int64]*domain.User) func(context.Context, int64) (*domain.User, error) {
	return func(_ context.Context, id int64) (*domain.User, error) {
		return members[id], nil
	}
}

func TestUserHandler_List(t *testing.T) {
	t.Parallel()

	members := memberFixture()
	users := &mocks.MockUserService{
		FindAllFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{members[1], members[2]}, nil
		},
	}

	rr := serve(newUserRouter(users, 1), http.MethodGet, "/users")

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "admin@hoa.test", resp[0].Email)
	assert.Equal(t, "user", resp[1].Role)
	assert.NotContains(t, rr.Body.String(), "h2")
}

func TestUserHandler_List_Error(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserService{
		FindAllFn: func(context.Context) ([]*domain.User, error) { return nil, errors.New("timeout") },
	}

	rr := serve(newUserRouter(users, 1), http.MethodGet, "/users")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to list users")
}

func TestUserHandler_Me(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserService{FindOneFn: findIn(memberFixture())}

	rr := serve(newUserRouter(users, 2), http.MethodGet, "/users/me")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.ID)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "Springfield", resp.Address.City)

	rr = serve(newUserRouter(users, 99), http.MethodGet, "/users/me")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(newUserRouter(users, 0), http.MethodGet, "/users/me")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUserHandler_Get(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserService{FindOneFn: findIn(memberFixture())}
	router := newUserRouter(users, 1)

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedError  string
	}{
		{name: "found", target: "/users/2", expectedStatus: http.StatusOK},
		{name: "absent", target: "/users/404", expectedStatus: http.StatusNotFound, expectedError: "User not found"},
		{name: "bad id", target: "/users/abc", expectedStatus: http.StatusBadRequest, expectedError: "Invalid id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(router, http.MethodGet, tt.target)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUserHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("existing and missing ids both succeed", func(t *testing.T) {
		t.Parallel()
		users := &mocks.MockUserService{}
		router := newUserRouter(users, 1)

		rr := serve(router, http.MethodDelete, "/users/2")
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())

		rr = serve(router, http.MethodDelete, "/users/404")
		assert.Equal(t, http.StatusNoContent, rr.Code)

		assert.Equal(t, []int64{2, 404}, users.RemovedIDs)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		users := &mocks.MockUserService{
			RemoveFn: func(context.Context, int64) error { return errors.New("fk violation") },
		}

		rr := serve(newUserRouter(users, 1), http.MethodDelete, "/users/2")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to delete user")
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		users := &mocks.MockUserService{}

		rr := serve(newUserRouter(users, 1), http.MethodDelete, "/users/0")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, users.RemovedIDs)
	})
}
