package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. HOA_SERVER_PORT.
const EnvPrefix = "HOA"

// defaults lists every known key. Registering each key lets AutomaticEnv
// override it during Unmarshal.
var defaults = map[string]any{
	"server.port":               8080,
	"server.log_level":          "info",
	"server.read_timeout":       "10s",
	"server.write_timeout":      "10s",
	"database.url":              "",
	"database.max_open_conns":   10,
	"database.max_idle_conns":   5,
	"database.auto_migrate":     false,
	"auth.jwt_secret":           "",
	"auth.token_lifetime":       "15m",
	"auth.bcrypt_cost":          12,
	"rate_limit.auth_requests":  20,
	"rate_limit.window":         "1m",
	"rate_limit.redis_addr":     "",
	"rate_limit.redis_password": "",
	"rate_limit.redis_db":       0,
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first (existing environment
// variables win), then config.yaml if present. Environment variables take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching the working directory. An empty path falls back to the search.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
