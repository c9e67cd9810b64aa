package script

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTree indicates a malformed node in a tree fixture.
	ErrBadTree = errors.New("bad tree")

	// ErrBadStep indicates a step with no action, several actions, or
	// malformed arguments.
	ErrBadStep = errors.New("bad step")
)

// StepError reports which step failed.
type StepError struct {
	Index int
	Line  int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (line %d): %v", e.Index+1, e.Line, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExpectationError is a failed expect step.
type ExpectationError struct {
	Field string
	Got   any
	Want  any
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("expected %s %v, got %v", e.Field, e.Want, e.Got)
}
