package tree

import (
	"fmt"
	"strconv"
)

// Location is a structural pointer into the tree.
type Location struct {
	Node   Node
	Offset int
}

// At is shorthand for Location{n, offset}.
func At(n Node, offset int) Location {
	return Location{Node: n, Offset: offset}
}

// IsZero reports whether the location has no node.
func (l Location) IsZero() bool { return l.Node == nil }

// Container returns the element whose child list the location sits in:
// the element itself for a gap, the parent for a text offset.
func (l Location) Container() *Element {
	switch n := l.Node.(type) {
	case *Element:
		return n
	case *Text:
		return n.parent
	}
	return nil
}

// String returns a debug representation.
func (l Location) String() string {
	switch n := l.Node.(type) {
	case *Text:
		return fmt.Sprintf("(%s,%d)", strconv.Quote(n.value), l.Offset)
	case *Element:
		return fmt.Sprintf("(<%s>,%d)", n.Tag, l.Offset)
	}
	return "(nil)"
}

// MaxOffset returns the largest valid offset for n.
func MaxOffset(n Node) int {
	switch v := n.(type) {
	case *Text:
		return v.Len()
	case *Element:
		if v.IsAtomic() {
			return 0
		}
		return v.Len()
	}
	return 0
}

// CheckOffset validates the offset of l against its node.
func CheckOffset(l Location) error {
	if l.Node == nil {
		return fmt.Errorf("nil location: %w", ErrInvalidOffset)
	}
	if l.Offset < 0 || l.Offset > MaxOffset(l.Node) {
		return fmt.Errorf("location %s: %w", l, ErrInvalidOffset)
	}
	return nil
}

// Range is an ordered or unordered pair of locations.
type Range struct {
	Start Location
	End   Location
}

// Collapsed returns a range with both ends at l.
func Collapsed(l Location) Range {
	return Range{Start: l, End: l}
}

// IsCollapsed reports whether both ends are the same location.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// String returns a debug representation.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
