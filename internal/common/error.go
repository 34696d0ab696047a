// Package common defines shared constants and sentinel errors used across
// the wellkeeper stores and the CLI. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Persistence adapter failures (read, write, corrupt payload).
	ErrStorage = errors.New("storage error")

	// Bad caller input: non-positive amounts, out-of-range values, empty names.
	ErrValidation = errors.New("validation error")
)

// Validationf returns an error matching ErrValidation with a formatted detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StorageError wraps err so that it matches both ErrStorage and err itself.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
