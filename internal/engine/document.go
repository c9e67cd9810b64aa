package engine

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
	"github.com/dshills/inkwell/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Selection is the document selection in biases.
	Selection = cursor.Selection

	// Interval is a span of biases.
	Interval = position.Interval

	// Command is an undoable edit command.
	Command = history.Command

	// Location is a structural position in the tree.
	Location = tree.Location
)

// Document owns one editable tree, its selection and its history.
//
// A Document is not safe for concurrent use. Every gesture runs to
// completion on the caller's goroutine before the next one starts.
type Document struct {
	root    *tree.Element
	sel     Selection
	history *history.History
	cfg     edit.Config
	logger  *logging.Logger

	maxHistory int
	merge      bool
	readOnly   bool
}

// New creates a document around root. A nil root starts an empty document.
func New(root *tree.Element, opts ...Option) *Document {
	if root == nil {
		root = tree.NewElement("doc")
	}
	d := &Document{
		root:       root,
		cfg:        edit.DefaultConfig(),
		logger:     logging.Null(),
		maxHistory: DefaultMaxHistory,
		merge:      true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.history = history.New(
		history.WithMaxEntries(d.maxHistory),
		history.WithMerge(d.merge),
		history.WithListener(d.onHistory),
		history.WithLogger(d.logger),
	)
	d.logger = d.logger.WithComponent("document")
	d.sel = d.sel.Clamp(d.Size())
	return d
}

// onHistory moves the selection to where the replayed command left it.
func (d *Document) onHistory(ev history.Event) {
	var (
		sel Selection
		ok  bool
	)
	switch ev.Kind {
	case history.EventExecute, history.EventRedo:
		sel, ok = selectionAfter(ev.Command)
	case history.EventUndo:
		sel, ok = selectionBefore(ev.Command)
	}
	if ok {
		d.sel = sel.Clamp(d.Size())
	}
}

func selectionAfter(cmd Command) (Selection, bool) {
	switch c := cmd.(type) {
	case edit.Selecting:
		return c.SelectionAfter(), true
	case *history.CompoundCommand:
		for i := len(c.Commands) - 1; i >= 0; i-- {
			if sel, ok := selectionAfter(c.Commands[i]); ok {
				return sel, true
			}
		}
	}
	return Selection{}, false
}

func selectionBefore(cmd Command) (Selection, bool) {
	switch c := cmd.(type) {
	case edit.Selecting:
		return c.SelectionBefore(), true
	case *history.CompoundCommand:
		for _, sub := range c.Commands {
			if sel, ok := selectionBefore(sub); ok {
				return sel, true
			}
		}
	}
	return Selection{}, false
}

// Root returns the document tree.
func (d *Document) Root() *tree.Element { return d.root }

// Config returns the editing settings commands are created with.
func (d *Document) Config() edit.Config { return d.cfg }

// History returns the document history.
func (d *Document) History() *history.History { return d.history }

// Size returns the token size of the document.
func (d *Document) Size() int { return position.Size(d.root) }

// Text returns the visible text of the document.
func (d *Document) Text() string { return tree.PlainText(d.root) }

// String returns the debug rendering of the tree.
func (d *Document) String() string { return tree.Format(d.root) }

// IsReadOnly reports whether edits are refused.
func (d *Document) IsReadOnly() bool { return d.readOnly }

// Selection returns the current selection.
func (d *Document) Selection() Selection { return d.sel }

// Select sets the selection. Negative biases count from the end.
func (d *Document) Select(anchor, head int) error {
	size := d.Size()
	a, err := position.NormalizeBias(anchor, size)
	if err != nil {
		return fmt.Errorf("anchor %d: %w", anchor, ErrSelectionOutOfRange)
	}
	h, err := position.NormalizeBias(head, size)
	if err != nil {
		return fmt.Errorf("head %d: %w", head, ErrSelectionOutOfRange)
	}
	d.sel = cursor.NewSelection(a, h)
	d.history.BreakMerge()
	return nil
}

// SelectAll selects the whole document.
func (d *Document) SelectAll() {
	d.sel = cursor.NewSelection(0, d.Size())
	d.history.BreakMerge()
}

// Bias converts a location to a bias.
func (d *Document) Bias(loc Location) (int, error) {
	return d.cfg.Resolver.LocationToBias(d.root, loc)
}

// Location converts a bias to its canonical location.
func (d *Document) Location(b int) (Location, error) {
	return d.cfg.Resolver.BiasToLocation(d.root, b)
}

// Execute runs cmd through the history. The selection follows the
// command when it reports one.
func (d *Document) Execute(cmd Command) error {
	if d.readOnly {
		return ErrReadOnly
	}
	if err := d.history.Execute(cmd, false); err != nil {
		d.logger.Warn("%s rejected: %v", cmd.Description(), err)
		return err
	}
	return nil
}

func (d *Document) opts() []edit.Option {
	return []edit.Option{edit.WithConfig(d.cfg), edit.WithSelection(d.sel)}
}

// Group runs fn as a single undo unit. If fn fails, its edits are rolled
// back.
func (d *Document) Group(name string, fn func() error) error {
	if d.readOnly {
		return ErrReadOnly
	}
	return d.history.Transaction(name, fn)
}

// Undo reverts the last edit.
func (d *Document) Undo() error {
	if d.readOnly {
		return ErrReadOnly
	}
	ok, err := d.history.Undo()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingToUndo
	}
	return nil
}

// Redo reapplies the last undone edit.
func (d *Document) Redo() error {
	if d.readOnly {
		return ErrReadOnly
	}
	ok, err := d.history.Redo()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingToRedo
	}
	return nil
}

// CanUndo returns true if there are edits to undo.
func (d *Document) CanUndo() bool { return d.history.CanUndo() }

// CanRedo returns true if there are edits to redo.
func (d *Document) CanRedo() bool { return d.history.CanRedo() }

// UndoCount returns the number of undo entries.
func (d *Document) UndoCount() int { return d.history.UndoCount() }

// RedoCount returns the number of redo entries.
func (d *Document) RedoCount() int { return d.history.RedoCount() }
