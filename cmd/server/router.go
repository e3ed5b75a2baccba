package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hoorayhoa/hoa-api/internal/api"
	"github.com/hoorayhoa/hoa-api/internal/api/middleware"
	"github.com/hoorayhoa/hoa-api/internal/api/shared"
	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
)

// APIPrefix is prepended to every application route.
const APIPrefix = "/api/v1"

type routerDeps struct {
	logger      *slog.Logger
	authService service.AuthService
	userService service.UserService
	jwtService  auth.JWTService
	metrics     *middleware.Metrics
	limiter     middleware.RateLimiter
}

// newRouter builds the chi router with all routes and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.TraceMiddleware(deps.logger))
	r.Use(deps.metrics.Instrument)
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	authHandler := api.NewAuthHandler(deps.authService, deps.logger)
	userHandler := api.NewUserHandler(deps.userService, deps.logger)
	authMiddleware := middleware.NewAuthMiddleware(deps.jwtService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{Message: "Hello from Hooray HOA"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", deps.metrics.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(deps.limiter, deps.metrics, "register")).
				Post("/register", authHandler.Register)
			r.With(middleware.RateLimit(deps.limiter, deps.metrics, "login")).
				Post("/login", authHandler.Login)
			r.With(authMiddleware.Authenticate).Get("/profile", authHandler.Profile)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", userHandler.Me)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(deps.userService, domain.RoleAdmin))
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Delete("/{id}", userHandler.Delete)
			})
		})
	})

	return r
}
