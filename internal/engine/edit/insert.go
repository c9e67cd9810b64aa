package edit

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// InsertText replaces the content of At with Text. A collapsed At is a
// plain insertion at the caret.
type InsertText struct {
	base
	At   position.Interval
	Text string

	result position.Interval
}

// NewInsertText creates an insertion. Text is normalized according to the
// configured Normalization.
func NewInsertText(root *tree.Element, at position.Interval, text string, opts ...Option) *InsertText {
	c := &InsertText{At: at}
	c.base = newBase(root, cursor.FromInterval(at), opts)
	c.Text = c.cfg.Normalization.Apply(text)
	return c
}

// Result returns the interval covering the inserted text after execution.
func (c *InsertText) Result() position.Interval { return c.result }

// Execute performs the insertion.
func (c *InsertText) Execute() error {
	if err := c.checkRoot(); err != nil {
		return err
	}
	span, err := widen(c.cfg, c.root, c.At)
	if err != nil {
		return err
	}
	conv := c.cfg.converter()
	r, err := conv.ResolveInterval(c.root, span)
	if err != nil {
		return err
	}

	var region tree.Node
	switch {
	case !span.IsCollapsed():
		region = tree.CommonAncestor(r.Start.Container(), r.End.Container())
	case isLabelInterior(c.root, r.Start):
		// Typing on a label goes after it.
		span = position.Caret(span.Start + 1)
		if r, err = conv.ResolveInterval(c.root, span); err != nil {
			return err
		}
		region = r.Start.Container()
	default:
		region = r.Start.Node
		if _, ok := region.(*tree.Text); !ok {
			region = r.Start.Container()
		}
	}
	snap, err := capture(c.root, region)
	if err != nil {
		return err
	}

	if err := c.apply(span); err != nil {
		if rerr := snap.restore(c.root); rerr != nil {
			return fmt.Errorf("%w (restore: %v)", err, rerr)
		}
		return err
	}
	c.At = span
	c.commit(snap, cursor.NewCursorSelection(c.result.End))
	return nil
}

func (c *InsertText) apply(span position.Interval) error {
	if !span.IsCollapsed() {
		r, anchors, err := c.cfg.converter().IntervalToRange(c.root, span)
		if err != nil {
			return err
		}
		if _, err := removeRange(r); err != nil {
			return err
		}
		nav.RemoveAnchors(anchors)
	}

	before := position.Size(c.root)
	if c.Text != "" {
		loc, err := c.cfg.Resolver.BiasToLocation(c.root, span.Start)
		if err != nil {
			return err
		}
		switch n := loc.Node.(type) {
		case *tree.Text:
			err = n.InsertAt(loc.Offset, c.Text)
		case *tree.Element:
			err = n.InsertChild(loc.Offset, tree.NewText(c.Text))
		}
		if err != nil {
			return err
		}
	}
	c.result = position.Span(span.Start, span.Start+position.Size(c.root)-before)
	return nil
}

// TryMerge absorbs a directly following caret insertion into the same
// region when neither text contains a word separator.
func (c *InsertText) TryMerge(next history.Command) bool {
	n, ok := next.(*InsertText)
	if !ok || n == c || n.root != c.root || !c.applied || !n.applied {
		return false
	}
	if !c.At.IsCollapsed() || !n.At.IsCollapsed() || n.At.Start != c.result.End {
		return false
	}
	if nav.ContainsSeparator(c.Text+n.Text, c.cfg.Separators) {
		return false
	}
	if !c.snap.covers(n.snap) {
		return false
	}
	c.Text += n.Text
	c.result.End = n.result.End
	c.after = n.after
	return true
}

// Description returns a human-readable description.
func (c *InsertText) Description() string {
	switch n := utf8.RuneCountInString(c.Text); {
	case n == 1:
		return fmt.Sprintf("Type '%s'", c.Text)
	case n <= 20:
		return fmt.Sprintf("Insert %q", c.Text)
	default:
		return fmt.Sprintf("Insert %d characters", n)
	}
}
