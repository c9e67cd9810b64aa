package macro

import (
	"errors"
	"fmt"
)

// Errors for macro execution.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a run exceeds its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNotFunction is returned by Call when the global is not a function.
	ErrNotFunction = errors.New("not a lua function")
)

// ScriptError is a Lua error, carrying the Go error that caused it when
// the failure came from a doc.* call.
type ScriptError struct {
	Message string
	Err     error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("lua: %s", e.Message)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
