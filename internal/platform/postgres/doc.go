// Package postgres provides PostgreSQL implementations of the store
// interfaces, the mapping from driver errors to store errors, and the
// embedded goose migrations for the member schema.
package postgres
