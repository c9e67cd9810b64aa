package edit

import (
	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Selecting is implemented by commands that move the document selection.
type Selecting interface {
	SelectionBefore() cursor.Selection
	SelectionAfter() cursor.Selection
}

// base holds what every command shares: identity, scoping root, settings,
// selections and the undo snapshot of the last execution.
type base struct {
	id        uuid.UUID
	root      *tree.Element
	cfg       Config
	before    cursor.Selection
	hasBefore bool
	after     cursor.Selection
	snap      *snapshot
	applied   bool
}

func newBase(root *tree.Element, defaultBefore cursor.Selection, opts []Option) base {
	b := base{id: uuid.New(), root: root, cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&b)
	}
	if !b.hasBefore {
		b.before = defaultBefore
	}
	return b
}

// ID returns the command identity.
func (b *base) ID() uuid.UUID { return b.id }

// Root returns the scoping root the command edits.
func (b *base) Root() *tree.Element { return b.root }

// SelectionBefore returns the selection to restore on undo.
func (b *base) SelectionBefore() cursor.Selection { return b.before }

// SelectionAfter returns the selection after the last execution.
func (b *base) SelectionAfter() cursor.Selection { return b.after }

// Applied reports whether the command is currently executed.
func (b *base) Applied() bool { return b.applied }

func (b *base) checkRoot() error {
	if b.root == nil || b.root.IsAtomic() || b.root.IsHint() || !b.root.IsValid() {
		return ErrInvalidRoot
	}
	return nil
}

// commit records a successful execution.
func (b *base) commit(snap *snapshot, after cursor.Selection) {
	b.snap = snap
	b.after = after
	b.applied = true
}

// Undo restores the subtree captured by the last execution.
func (b *base) Undo() error {
	if !b.applied {
		return ErrNotApplied
	}
	if b.snap != nil {
		if err := b.snap.restore(b.root); err != nil {
			return err
		}
	}
	b.snap = nil
	b.applied = false
	return nil
}
