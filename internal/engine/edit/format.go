package edit

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Format wraps the content of At in a new container element with Tag.
// Both ends of At must lie in the same container.
type Format struct {
	base
	At  position.Interval
	Tag string
}

// NewFormat creates a wrapping command.
func NewFormat(root *tree.Element, at position.Interval, tag string, opts ...Option) *Format {
	f := &Format{At: at, Tag: tag}
	f.base = newBase(root, cursor.FromInterval(at), opts)
	return f
}

// Execute wraps the interval.
func (f *Format) Execute() error {
	if err := f.checkRoot(); err != nil {
		return err
	}
	span, err := f.At.Normalize(position.Size(f.root))
	if err != nil {
		return err
	}
	if span.IsCollapsed() {
		return ErrEmptyInterval
	}
	r, err := f.cfg.converter().ResolveInterval(f.root, span)
	if err != nil {
		return err
	}
	if isLabelInterior(f.root, r.Start) || isLabelInterior(f.root, r.End) {
		return ErrCrossesBoundary
	}
	parent := r.Start.Container()
	if parent != r.End.Container() {
		return fmt.Errorf("format %v: %w", span, ErrCrossesBoundary)
	}

	snap, err := capture(f.root, parent)
	if err != nil {
		return err
	}
	right, err := toGap(r.End)
	if err == nil {
		var left gap
		if left, err = toGap(r.Start); err == nil {
			lo := left.index()
			wrapper := tree.NewElement(f.Tag, parent.RemoveRange(lo, right.index())...)
			err = parent.InsertChild(lo, wrapper)
		}
	}
	if err != nil {
		if rerr := snap.restore(f.root); rerr != nil {
			return fmt.Errorf("%w (restore: %v)", err, rerr)
		}
		return err
	}

	f.At = span
	f.commit(snap, cursor.NewSelection(span.Start+1, span.End+1))
	return nil
}

// TryMerge never merges formatting.
func (f *Format) TryMerge(history.Command) bool { return false }

// Description returns a human-readable description.
func (f *Format) Description() string {
	return fmt.Sprintf("Format <%s>", f.Tag)
}

// Unformat removes the nearest element with Tag enclosing At.Start,
// splicing its children into its parent.
type Unformat struct {
	base
	At  position.Interval
	Tag string
}

// NewUnformat creates an unwrapping command.
func NewUnformat(root *tree.Element, at position.Interval, tag string, opts ...Option) *Unformat {
	u := &Unformat{At: at, Tag: tag}
	u.base = newBase(root, cursor.FromInterval(at), opts)
	return u
}

// Execute unwraps the enclosing element.
func (u *Unformat) Execute() error {
	if err := u.checkRoot(); err != nil {
		return err
	}
	span, err := u.At.Normalize(position.Size(u.root))
	if err != nil {
		return err
	}
	loc, err := u.cfg.Resolver.BiasToLocation(u.root, span.Start)
	if err != nil {
		return err
	}
	el := enclosing(u.root, loc.Node, u.Tag)
	if el == nil {
		return fmt.Errorf("unformat <%s> at %d: %w", u.Tag, span.Start, ErrTagNotFound)
	}

	parent := el.Parent()
	outerStart, err := u.cfg.Resolver.LocationToBias(u.root, tree.At(parent, parent.IndexOf(el)))
	if err != nil {
		return err
	}
	outerEnd := outerStart + position.SizeWithBoundary(el)

	snap, err := capture(u.root, parent)
	if err != nil {
		return err
	}
	if err := el.Unwrap(); err != nil {
		if rerr := snap.restore(u.root); rerr != nil {
			return fmt.Errorf("%w (restore: %v)", err, rerr)
		}
		return err
	}
	tree.MergeAdjacentText(parent)

	shift := func(b int) int {
		switch {
		case b <= outerStart:
			return b
		case b < outerEnd:
			return b - 1
		default:
			return b - 2
		}
	}
	sel := u.before
	u.At = span
	u.commit(snap, cursor.NewSelection(shift(sel.Anchor), shift(sel.Head)))
	return nil
}

// enclosing finds the nearest container with tag holding n, below root.
func enclosing(root *tree.Element, n tree.Node, tag string) *tree.Element {
	var cur *tree.Element
	if e, ok := n.(*tree.Element); ok {
		cur = e
	} else {
		cur = n.Parent()
	}
	for ; cur != nil && cur != root; cur = cur.Parent() {
		if cur.Tag == tag && tree.IsContainer(cur) {
			return cur
		}
	}
	return nil
}

// TryMerge never merges unformatting.
func (u *Unformat) TryMerge(history.Command) bool { return false }

// Description returns a human-readable description.
func (u *Unformat) Description() string {
	return fmt.Sprintf("Remove <%s>", u.Tag)
}
