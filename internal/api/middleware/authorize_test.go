package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/api/shared"
	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

type userFinderFunc func(ctx context.Context, id int64) (*domain.User, error)

func (f userFinderFunc) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	return f(ctx, id)
}

func withClaims(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, &auth.Claims{UserID: userID})
	return r.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	members := map[int64]*domain.User{
		1: {ID: 1, Email: "admin@x.io", Role: domain.RoleAdmin},
		2: {ID: 2, Email: "member@x.io", Role: domain.RoleUser},
	}
	finder := userFinderFunc(func(_ context.Context, id int64) (*domain.User, error) {
		if id == 500 {
			return nil, errors.New("connection reset")
		}
		return members[id], nil
	})

	tests := []struct {
		name           string
		userID         int64
		authenticated  bool
		expectedStatus int
	}{
		{name: "admin allowed", userID: 1, authenticated: true, expectedStatus: http.StatusOK},
		{name: "member forbidden", userID: 2, authenticated: true, expectedStatus: http.StatusForbidden},
		{name: "deleted member", userID: 3, authenticated: true, expectedStatus: http.StatusUnauthorized},
		{name: "lookup failure", userID: 500, authenticated: true, expectedStatus: http.StatusInternalServerError},
		{name: "unauthenticated", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tt.authenticated {
				req = withClaims(req, tt.userID)
			}
			recorder := httptest.NewRecorder()

			RequireRole(finder, domain.RoleAdmin)(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}

func TestRequireRole_AnyOf(t *testing.T) {
	t.Parallel()

	finder := userFinderFunc(func(_ context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleUser}, nil
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	recorder := httptest.NewRecorder()
	req := withClaims(httptest.NewRequest(http.MethodGet, "/", nil), 7)

	RequireRole(finder, domain.RoleAdmin, domain.RoleUser)(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
