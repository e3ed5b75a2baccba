// Package store defines interfaces for member and address persistence,
// the shared error taxonomy for store implementations, and the transaction
// helper used when several writes must succeed or fail together.
package store
