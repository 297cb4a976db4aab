package service

import (
	"errors"
	"fmt"
)

// Error kinds raised by the services. Handlers translate these with errors.Is;
// everything else is treated as an internal failure.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable marks a missing backing store.
	ErrUnavailable = errors.New("store not available")

	// ErrPasswordValidation marks a rejected password specifically, so handlers
	// can report the right field. It wraps ErrValidation.
	ErrPasswordValidation = fmt.Errorf("%w: invalid password", ErrValidation)
)
