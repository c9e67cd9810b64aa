package tree

// Contains reports whether n is ancestor itself or lies inside it.
func Contains(ancestor *Element, n Node) bool {
	if ancestor == nil || n == nil {
		return false
	}
	for cur := n; cur != nil; {
		if e, ok := cur.(*Element); ok && e == ancestor {
			return true
		}
		p := cur.Parent()
		if p == nil {
			return false
		}
		cur = p
	}
	return false
}

// parentNode returns the parent as a Node, keeping a nil interface for
// detached nodes.
func parentNode(n Node) Node {
	if p := n.Parent(); p != nil {
		return p
	}
	return nil
}

// RootOf returns the topmost ancestor of n, or n itself.
func RootOf(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// Depth returns the number of ancestors between n and root.
func Depth(root *Element, n Node) int {
	d := 0
	for cur := n; cur != nil && cur != Node(root); cur = parentNode(cur) {
		d++
	}
	return d
}

// CommonAncestor returns the deepest element containing both a and b.
func CommonAncestor(a, b *Element) *Element {
	seen := make(map[*Element]bool)
	for e := a; e != nil; e = e.parent {
		seen[e] = true
	}
	for e := b; e != nil; e = e.parent {
		if seen[e] {
			return e
		}
	}
	return nil
}

// PrevNonHint returns the nearest non-hint child of e before index i,
// with its index, or (nil, -1).
func PrevNonHint(e *Element, i int) (Node, int) {
	for j := min(i, len(e.children)) - 1; j >= 0; j-- {
		if !IsHint(e.children[j]) {
			return e.children[j], j
		}
	}
	return nil, -1
}

// NextNonHint returns the nearest non-hint child of e at or after index i,
// with its index, or (nil, -1).
func NextNonHint(e *Element, i int) (Node, int) {
	for j := max(i, 0); j < len(e.children); j++ {
		if !IsHint(e.children[j]) {
			return e.children[j], j
		}
	}
	return nil, -1
}

// CanonicalGap returns the preferred location for the gap before child i of
// e. A text anchor wins over the element gap: first the end of the preceding
// text sibling, then the start of the following one. Otherwise the gap index
// is advanced past hints so that equivalent gaps compare equal.
func CanonicalGap(e *Element, i int) Location {
	if e.IsAtomic() {
		return At(e, 0)
	}
	if prev, _ := PrevNonHint(e, i); prev != nil {
		if t, ok := prev.(*Text); ok {
			return At(t, t.Len())
		}
	}
	next, j := NextNonHint(e, i)
	if t, ok := next.(*Text); ok {
		return At(t, 0)
	}
	if next == nil {
		return At(e, len(e.children))
	}
	return At(e, j)
}

// Canonical rewrites l into its preferred equivalent. Only boundary
// locations change: text offset 0, text end and element gaps.
func Canonical(l Location) Location {
	switch n := l.Node.(type) {
	case *Text:
		if n.parent == nil || (l.Offset > 0 && l.Offset < n.Len()) {
			return l
		}
		idx := n.parent.IndexOf(n)
		if l.Offset == 0 {
			return CanonicalGap(n.parent, idx)
		}
		return CanonicalGap(n.parent, idx+1)
	case *Element:
		return CanonicalGap(n, l.Offset)
	}
	return l
}

// OutermostHint returns the highest hint element on the path from n up to
// (but excluding) root, or nil when n is not inside a hint.
func OutermostHint(root *Element, n Node) *Element {
	var found *Element
	for cur := n; cur != nil && cur != Node(root); cur = parentNode(cur) {
		if e, ok := cur.(*Element); ok && e.IsHint() {
			found = e
		}
	}
	return found
}

// SnapOutOfHint moves a location placed inside a hint subtree to the gap
// before the hint (offset 0) or after it (any other offset).
func SnapOutOfHint(root *Element, l Location) Location {
	h := OutermostHint(root, l.Node)
	if h == nil || h.parent == nil {
		return l
	}
	idx := h.parent.IndexOf(h)
	if l.Offset == 0 {
		return At(h.parent, idx)
	}
	return At(h.parent, idx+1)
}

// SnapIntoLabel moves a location placed inside the subtree of a label to
// the label's single interior point (label, 0).
func SnapIntoLabel(root *Element, l Location) Location {
	var found *Element
	for cur := parentNode(l.Node); cur != nil && cur != Node(root); cur = parentNode(cur) {
		if e, ok := cur.(*Element); ok && e.IsAtomic() {
			found = e
		}
	}
	if found == nil {
		return l
	}
	return At(found, 0)
}
