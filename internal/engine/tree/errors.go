package tree

import "errors"

// Errors returned by tree operations.
var (
	// ErrNotDescendant indicates a node is not inside the given root.
	ErrNotDescendant = errors.New("node is not a descendant of root")

	// ErrInvalidOffset indicates an offset outside the node's valid range.
	ErrInvalidOffset = errors.New("offset out of range")

	// ErrBadPath indicates a child path that does not resolve in the tree.
	ErrBadPath = errors.New("path does not resolve")

	// ErrNotElement indicates an element was required but a text node was given.
	ErrNotElement = errors.New("node is not an element")

	// ErrCycle indicates an insertion that would make a node its own ancestor.
	ErrCycle = errors.New("insertion would create a cycle")
)
