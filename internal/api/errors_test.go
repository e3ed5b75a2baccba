package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoorayhoa/hoa-api/internal/api/shared"
	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
	"github.com/hoorayhoa/hoa-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email taken", service.ErrEmailAlreadyExists, http.StatusConflict},
		{"unique index", store.ErrEmailExists, http.StatusConflict},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"token not yet valid", auth.ErrTokenNotYetValid, http.StatusUnauthorized},
		{"email required", service.ErrEmailRequired, http.StatusBadRequest},
		{"domain validation", domain.ErrValidation, http.StatusBadRequest},
		{"field validation", domain.NewValidationError("city", "is required", nil), http.StatusBadRequest},
		{"invalid role", domain.NewValidationError("role", "must be user or admin", domain.ErrInvalidRole), http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"password too long", auth.ErrPasswordTooLong, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"unknown", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"email taken", service.ErrEmailAlreadyExists, "Email already exists"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid credentials"},
		{"expired", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"field validation", domain.NewValidationError("postalCode", "is required", nil), "Invalid postalCode: is required"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"validation", domain.ErrValidation, "Validation failed"},
		{"unknown", errors.New("pq: relation users does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(&RegisterRequest{
		Email:      "jane@example.com",
		Password:   "pw",
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "",
		Country:    "US",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid postalCode: required field", SanitizeValidationError(err))

	err = shared.ValidateRequest(&RegisterRequest{
		Email:      "jane",
		Password:   "pw",
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	})
	assert.Equal(t, "Invalid email: invalid email format", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		defaultMsg      string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "conflict ignores default",
			err:             service.ErrEmailAlreadyExists,
			defaultMsg:      "Failed to register user",
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email already exists",
		},
		{
			name:            "server error uses default",
			err:             errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			defaultMsg:      "Failed to register user",
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Failed to register user",
		},
		{
			name:            "server error without default",
			err:             errors.New("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(shared.WithTraceID(req.Context(), "trace-1"))

			HandleAPIError(rr, req, tc.err, tc.defaultMsg)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var response shared.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
			assert.Equal(t, tc.expectedMessage, response.Error)
			assert.Equal(t, "trace-1", response.TraceID)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleValidationError(rr, req, domain.NewValidationError("password", "is too long", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid password: is too long")
}
