package engine

import "errors"

// Errors returned by document operations.
var (
	// ErrReadOnly indicates an edit was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrSelectionOutOfRange indicates a selection outside the document.
	ErrSelectionOutOfRange = errors.New("selection out of range")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)
