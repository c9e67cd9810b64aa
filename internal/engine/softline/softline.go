// Package softline answers visual line queries ("home" and "end" of a
// wrapped line) for locations in a document tree.
//
// Line wrapping is a property of the rendering surface, not of the tree,
// so the surface is consulted through the Surface interface. The queries
// walk the tree token by token with the nav package and stop where the
// surface reports a different visual line.
package softline

import (
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Rect is a rectangular region on the rendering surface.
type Rect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// OverlapsVertically reports whether r and other share more than half of
// the shorter one's height. Surfaces without a better notion of a line can
// use it as their SameVisualLine.
func (r Rect) OverlapsVertically(other Rect) bool {
	top := max(r.Top, other.Top)
	bottom := min(r.Bottom, other.Bottom)
	if bottom <= top {
		return false
	}
	shorter := min(r.Height(), other.Height())
	return 2*(bottom-top) > shorter
}

// Surface is the rendering side of soft line queries.
type Surface interface {
	// BoundingRects returns the rectangles a caret at loc occupies. A
	// location at a wrap point may have one rectangle per line; a location
	// that is not rendered has none.
	BoundingRects(loc tree.Location) []Rect

	// SameVisualLine reports whether two rectangles lie on one line.
	SameVisualLine(a, b Rect) bool
}

// Head returns the first location on loc's visual line.
func Head(s Surface, root *tree.Element, loc tree.Location) (tree.Location, error) {
	return walk(s, root, loc, nav.Prev)
}

// Tail returns the last location on loc's visual line.
func Tail(s Surface, root *tree.Element, loc tree.Location) (tree.Location, error) {
	return walk(s, root, loc, nav.Next)
}

type stepFunc func(root *tree.Element, loc tree.Location) (tree.Location, bool, error)

func walk(s Surface, root *tree.Element, loc tree.Location, step stepFunc) (tree.Location, error) {
	rects := s.BoundingRects(loc)
	if len(rects) == 0 {
		return loc, nil
	}
	ref := rects[0]

	best, cur := loc, loc
	for {
		next, ok, err := step(root, cur)
		if err != nil {
			return tree.Location{}, err
		}
		if !ok {
			return best, nil
		}
		cur = next
		rs := s.BoundingRects(cur)
		if len(rs) == 0 {
			// Unrendered tokens (collapsed widgets) do not end the line.
			continue
		}
		if !onLine(s, rs, ref) {
			return best, nil
		}
		best = cur
	}
}

func onLine(s Surface, rects []Rect, ref Rect) bool {
	for _, r := range rects {
		if s.SameVisualLine(r, ref) {
			return true
		}
	}
	return false
}
