package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/hoorayhoa/hoa-api/internal/api/shared"
	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/platform/logger"
)

// UserFinder resolves the member behind a token subject.
// service.UserService satisfies it.
type UserFinder interface {
	FindOne(ctx context.Context, id int64) (*domain.User, error)
}

// RequireRole allows the request through only when the authenticated member
// currently holds one of roles. The role is read from storage, not the
// token. Must run after Authenticate.
func RequireRole(users UserFinder, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			user, err := users.FindOne(r.Context(), userID)
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
				return
			}
			if user == nil {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "User no longer exists")
				return
			}

			if !slices.Contains(roles, user.Role) {
				logger.FromContext(r.Context()).Warn("role check failed",
					"role", string(user.Role),
					"path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
