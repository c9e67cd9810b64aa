package position

import (
	"errors"
	"fmt"
)

// Errors returned by position operations.
var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("no location for bias")

	// ErrOutOfRange indicates a bias outside [-size-1, size].
	ErrOutOfRange = errors.New("bias out of range")

	// ErrDepthExceeded indicates the tree is deeper than the resolver allows.
	ErrDepthExceeded = errors.New("tree depth limit exceeded")

	// ErrInvertedInterval indicates an interval whose start is after its end.
	ErrInvertedInterval = errors.New("interval start after end")
)

// NotFoundError reports that a bias could not be resolved. It is the
// boundary-exhaustion result of BiasToLocation, not a caller bug.
type NotFoundError struct {
	Bias int
	Err  error
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bias %d: %v", e.Bias, e.Err)
}

// Unwrap returns the underlying reason.
func (e *NotFoundError) Unwrap() error { return e.Err }

// Is makes every NotFoundError match ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
