package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps each to a status code.
var (
	// ErrEmailRequired indicates a lookup by email was attempted with an empty email.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmailRequired = errors.New("email is required")

	// ErrEmailAlreadyExists indicates registration with an email that is already taken.
	// API layer should map this to HTTP 409 Conflict.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// so that callers cannot tell which one failed.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
