package edit

import "errors"

// Errors returned by edit commands.
var (
	// ErrInvalidRoot indicates a command without a usable scoping root.
	ErrInvalidRoot = errors.New("invalid scoping root")

	// ErrCrossesBoundary indicates a format range whose ends lie in
	// different containers, or inside a label.
	ErrCrossesBoundary = errors.New("range crosses a container boundary")

	// ErrEmptyInterval indicates a collapsed interval where content is required.
	ErrEmptyInterval = errors.New("empty interval")

	// ErrTagNotFound indicates no enclosing element with the requested tag.
	ErrTagNotFound = errors.New("no enclosing element with tag")

	// ErrNotApplied indicates Undo on a command that has not executed.
	ErrNotApplied = errors.New("command not applied")

	// ErrUnknownCommand indicates a journal record of an unknown kind.
	ErrUnknownCommand = errors.New("unknown command kind")
)
