package cursor

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/position"
)

// Selection is the live selection of a document expressed in biases.
// Anchor is where the selection started; Head is the caret (where typing
// occurs). When Anchor == Head the selection is a caret with no extent.
// Selection is an immutable value type.
type Selection struct {
	Anchor int
	Head   int
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a caret at bias b.
func NewCursorSelection(b int) Selection {
	return Selection{Anchor: b, Head: b}
}

// FromInterval creates a forward selection covering iv.
func FromInterval(iv position.Interval) Selection {
	return Selection{Anchor: iv.Start, Head: iv.End}
}

// IsEmpty returns true if the selection has no extent (just a caret).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the number of tokens selected.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Interval returns the selection as an ordered interval.
func (s Selection) Interval() position.Interval {
	return position.Span(s.Start(), s.End())
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// Cursor returns the head position (where typing would occur).
func (s Selection) Cursor() int {
	return s.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return s.Head >= s.Anchor
}

// Extend returns a new selection with the head moved to b.
// The anchor remains fixed.
func (s Selection) Extend(b int) Selection {
	return Selection{Anchor: s.Anchor, Head: b}
}

// MoveTo returns a caret at b.
func (s Selection) MoveTo(b int) Selection {
	return Selection{Anchor: b, Head: b}
}

// Collapse collapses the selection to a caret at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	return s.MoveTo(s.Start())
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	return s.MoveTo(s.End())
}

// Flip returns a selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Clamp limits both ends to [0, size].
func (s Selection) Clamp(size int) Selection {
	clamp := func(b int) int { return max(0, min(b, size)) }
	return Selection{Anchor: clamp(s.Anchor), Head: clamp(s.Head)}
}

// String returns "anchor->head".
func (s Selection) String() string {
	return fmt.Sprintf("%d->%d", s.Anchor, s.Head)
}
