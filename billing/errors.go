package billing

import (
	"errors"
	"fmt"
)

// Error taxonomy of the billing engine. Everything is surfaced to the caller
// as-is; the engine never retries and never compensates.
var (
	// ErrInvalidRange: a date window whose start is after its end.
	ErrInvalidRange = errors.New("billing: range start is after end")
	// ErrInvalidInput: negative quantity or price, out-of-bounds margin,
	// malformed or missing invoice data.
	ErrInvalidInput = errors.New("billing: invalid input")
	// ErrNotFound: the referenced store does not exist.
	ErrNotFound = errors.New("billing: not found")
	// ErrIntegrityViolation: a line references a product that cannot be
	// resolved. Upstream data corruption, not a user error.
	ErrIntegrityViolation = errors.New("billing: data integrity violation")
)

// PersistenceError wraps a storage-layer read or write failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("billing: persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
