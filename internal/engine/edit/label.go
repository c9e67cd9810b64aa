package edit

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// InsertLabel inserts an atomic widget at a caret. Content, when set, is
// stored as the label's single text child and is never addressable.
type InsertLabel struct {
	base
	At      int
	Tag     string
	Content string
}

// NewInsertLabel creates a label insertion.
func NewInsertLabel(root *tree.Element, at int, tag, content string, opts ...Option) *InsertLabel {
	l := &InsertLabel{At: at, Tag: tag, Content: content}
	l.base = newBase(root, cursor.NewCursorSelection(at), opts)
	return l
}

// Execute inserts the label.
func (l *InsertLabel) Execute() error {
	if err := l.checkRoot(); err != nil {
		return err
	}
	b, err := position.NormalizeBias(l.At, position.Size(l.root))
	if err != nil {
		return err
	}
	loc, err := l.cfg.Resolver.BiasToLocation(l.root, b)
	if err != nil {
		return err
	}
	if isLabelInterior(l.root, loc) {
		b++
		if loc, err = l.cfg.Resolver.BiasToLocation(l.root, b); err != nil {
			return err
		}
	}

	parent := loc.Container()
	snap, err := capture(l.root, parent)
	if err != nil {
		return err
	}
	label := tree.NewLabel(l.Tag)
	if l.Content != "" {
		label.AppendChild(tree.NewText(l.Content))
	}
	g, err := toGap(loc)
	if err == nil {
		err = g.parent.InsertChild(g.index(), label)
	}
	if err != nil {
		if rerr := snap.restore(l.root); rerr != nil {
			return fmt.Errorf("%w (restore: %v)", err, rerr)
		}
		return err
	}

	l.At = b
	l.commit(snap, cursor.NewCursorSelection(b+2))
	return nil
}

// TryMerge never merges label insertions.
func (l *InsertLabel) TryMerge(history.Command) bool { return false }

// Description returns a human-readable description.
func (l *InsertLabel) Description() string {
	return fmt.Sprintf("Insert [%s]", l.Tag)
}
