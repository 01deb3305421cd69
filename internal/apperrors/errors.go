// Package apperrors defines the sentinel errors shared across repositories,
// services, and handlers. Handlers map them to HTTP statuses; everything else
// wraps them with context via fmt.Errorf and %w.
package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a store uniqueness constraint rejected a write.
	ErrDuplicate = errors.New("record already exists")

	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("invalid input")
)
