package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hoorayhoa/hoa-api/internal/api/middleware"
	"github.com/hoorayhoa/hoa-api/internal/config"
	"github.com/hoorayhoa/hoa-api/internal/platform/postgres"
	"github.com/hoorayhoa/hoa-api/internal/service"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService service.UserService
	authService service.AuthService
	jwtService  auth.JWTService

	metrics *middleware.Metrics
	limiter middleware.RateLimiter
}

// newApplication wires stores, services and HTTP middleware dependencies
// around an open database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: middleware.NewMetrics(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime", cfg.Auth.TokenLifetime.String())

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, logger)
	addressStore := postgres.NewPostgresAddressStore(db, logger)

	app.userService = service.NewUserService(userStore, logger)
	addressService := service.NewAddressService(addressStore, logger)

	app.authService, err = service.NewAuthService(db, app.userService, addressService, hasher, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.limiter, err = newRateLimiter(ctx, cfg.RateLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// newRateLimiter picks the Redis limiter when an address is configured and
// the in-process one otherwise. It returns nil when limiting is disabled.
func newRateLimiter(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (middleware.RateLimiter, error) {
	switch rateLimitBackend(cfg) {
	case "disabled":
		return nil, nil
	case "redis":
		limiter, err := middleware.NewRedisRateLimiter(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return limiter, nil
	default:
		return middleware.NewMemoryRateLimiter(cfg.AuthRequests, cfg.Window), nil
	}
}

func rateLimitBackend(cfg config.RateLimitConfig) string {
	switch {
	case cfg.AuthRequests <= 0:
		return "disabled"
	case cfg.RedisAddr != "":
		return "redis"
	default:
		return "memory"
	}
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(routerDeps{
		logger:      app.logger,
		authService: app.authService,
		userService: app.userService,
		jwtService:  app.jwtService,
		metrics:     app.metrics,
		limiter:     app.limiter,
	})

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.limiter != nil {
		if err := app.limiter.Close(); err != nil {
			app.logger.Error("error closing rate limiter", "error", err)
		}
	}

	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}

	app.logger.Info("application shutdown completed")
}
