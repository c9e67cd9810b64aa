package edit

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/cursor"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Direction is the direction a deletion was issued in.
type Direction uint8

const (
	// Backward deletes before the caret (Backspace).
	Backward Direction = iota
	// Forward deletes after the caret (Delete).
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// ParseDirection parses "backward" or "forward".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "backward", "":
		return Backward, nil
	case "forward":
		return Forward, nil
	}
	return Backward, fmt.Errorf("unknown direction %q", s)
}

// Delete removes the tokens of At. Ends that fall inside a label are
// widened to remove the whole label.
type Delete struct {
	base
	At  position.Interval
	Dir Direction

	deleted    string
	structural bool
}

// NewDelete creates a deletion.
func NewDelete(root *tree.Element, at position.Interval, dir Direction, opts ...Option) *Delete {
	d := &Delete{At: at, Dir: dir}
	d.base = newBase(root, cursor.FromInterval(at), opts)
	return d
}

// Deleted returns the removed characters when the deletion stayed inside
// one text node.
func (d *Delete) Deleted() string { return d.deleted }

// Structural reports whether the last execution removed or joined nodes.
func (d *Delete) Structural() bool { return d.structural }

// Execute performs the deletion.
func (d *Delete) Execute() error {
	if err := d.checkRoot(); err != nil {
		return err
	}
	span, err := widen(d.cfg, d.root, d.At)
	if err != nil {
		return err
	}
	after := cursor.NewCursorSelection(span.Start)
	if span.IsCollapsed() {
		d.At = span
		d.deleted, d.structural = "", false
		d.commit(nil, after)
		return nil
	}

	conv := d.cfg.converter()
	r, err := conv.ResolveInterval(d.root, span)
	if err != nil {
		return err
	}
	region := rangeRegion(r)
	snap, err := capture(d.root, region)
	if err != nil {
		return err
	}

	r, anchors, err := conv.IntervalToRange(d.root, span)
	if err != nil {
		return err
	}
	removed, err := removeRange(r)
	if err != nil {
		if rerr := snap.restore(d.root); rerr != nil {
			return fmt.Errorf("%w (restore: %v)", err, rerr)
		}
		return err
	}
	nav.RemoveAnchors(anchors)

	_, isText := region.(*tree.Text)
	d.At = span
	d.deleted, d.structural = removed, !isText
	d.commit(snap, after)
	return nil
}

// TryMerge absorbs the next single-character deletion in the same text
// node and direction, unless either side removed a word separator.
func (d *Delete) TryMerge(next history.Command) bool {
	n, ok := next.(*Delete)
	if !ok || n == d || n.root != d.root || n.Dir != d.Dir || !d.applied || !n.applied {
		return false
	}
	if d.structural || n.structural || d.snap == nil || n.At.Len() != 1 {
		return false
	}
	if nav.ContainsSeparator(d.deleted+n.deleted, d.cfg.Separators) {
		return false
	}
	if !d.snap.covers(n.snap) {
		return false
	}

	switch d.Dir {
	case Backward:
		if n.At.End != d.At.Start {
			return false
		}
		d.At.Start = n.At.Start
		d.deleted = n.deleted + d.deleted
	case Forward:
		if n.At.Start != d.At.Start {
			return false
		}
		d.At.End += n.At.Len()
		d.deleted += n.deleted
	}
	d.after = n.after
	return true
}

// Description returns a human-readable description.
func (d *Delete) Description() string {
	name := "Backspace"
	if d.Dir == Forward {
		name = "Delete"
	}
	if n := d.At.Len(); n > 1 {
		return fmt.Sprintf("%s %d characters", name, n)
	}
	return name
}
