package tree

import (
	"fmt"
	"slices"
)

// Path is the list of child indices leading from a root to a node.
// Unlike a node reference it stays meaningful after the subtree it points
// into has been replaced by an equivalent copy.
type Path []int

// PathOf returns the path from root to n.
func PathOf(root *Element, n Node) (Path, error) {
	var p Path
	cur := n
	for cur != Node(root) {
		parent := cur.Parent()
		if parent == nil {
			return nil, ErrNotDescendant
		}
		p = append(p, parent.IndexOf(cur))
		cur = parent
	}
	slices.Reverse(p)
	return p, nil
}

// Resolve follows p from root.
func Resolve(root *Element, p Path) (Node, error) {
	var cur Node = root
	for depth, i := range p {
		e, ok := cur.(*Element)
		if !ok || i < 0 || i >= e.Len() {
			return nil, fmt.Errorf("step %d of %v: %w", depth, []int(p), ErrBadPath)
		}
		cur = e.Child(i)
	}
	return cur, nil
}

// Equal reports whether two paths are identical.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}
