package edit

import (
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// gap is a position between two children of parent. It is anchored to the
// child that follows it, so inserting siblings elsewhere does not move it.
type gap struct {
	parent *tree.Element
	before tree.Node // nil at the end of parent
}

func (g gap) index() int {
	if g.before == nil {
		return g.parent.Len()
	}
	return g.parent.IndexOf(g.before)
}

// toGap converts loc into a child gap, splitting a text node when loc is
// strictly inside it.
func toGap(loc tree.Location) (gap, error) {
	switch n := loc.Node.(type) {
	case *tree.Text:
		p := n.Parent()
		switch {
		case loc.Offset == 0:
			return gap{parent: p, before: n}, nil
		case loc.Offset >= n.Len():
			return gap{parent: p, before: nextSibling(n)}, nil
		}
		tail, err := n.SplitAt(loc.Offset)
		if err != nil {
			return gap{}, err
		}
		return gap{parent: p, before: tail}, nil
	case *tree.Element:
		if loc.Offset < n.Len() {
			return gap{parent: n, before: n.Child(loc.Offset)}, nil
		}
		return gap{parent: n}, nil
	}
	return gap{}, tree.ErrNotElement
}

func nextSibling(n tree.Node) tree.Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	if i := p.IndexOf(n) + 1; i < p.Len() {
		return p.Child(i)
	}
	return nil
}

func isLabelInterior(root *tree.Element, loc tree.Location) bool {
	e, ok := loc.Node.(*tree.Element)
	return ok && e != root && e.IsAtomic()
}

// widen normalizes iv and grows it so neither end splits a label.
func widen(cfg Config, root *tree.Element, iv position.Interval) (position.Interval, error) {
	iv, err := iv.Normalize(position.Size(root))
	if err != nil || iv.IsCollapsed() {
		return iv, err
	}
	start, err := cfg.Resolver.BiasToLocation(root, iv.Start)
	if err != nil {
		return iv, err
	}
	if isLabelInterior(root, start) {
		iv.Start--
	}
	end, err := cfg.Resolver.BiasToLocation(root, iv.End)
	if err != nil {
		return iv, err
	}
	if isLabelInterior(root, end) {
		iv.End++
	}
	return iv, nil
}

// rangeRegion returns the smallest node whose snapshot covers removing r:
// the text itself when both ends share one, else the common ancestor of
// both containers.
func rangeRegion(r tree.Range) tree.Node {
	if t, ok := r.Start.Node.(*tree.Text); ok && r.Start.Node == r.End.Node {
		return t
	}
	return tree.CommonAncestor(r.Start.Container(), r.End.Container())
}

// ancestry lists e and its ancestors up to, but excluding, stop.
func ancestry(e, stop *tree.Element) []*tree.Element {
	var out []*tree.Element
	for cur := e; cur != nil && cur != stop; cur = cur.Parent() {
		out = append(out, cur)
	}
	return out
}

// removeRange deletes everything between the two ends of r, which must be
// in document order. Inside one text node the characters are cut and
// returned. Otherwise the content is removed level by level and the
// containers left open on both sides are joined pairwise from the common
// ancestor down, so deleting across "<p>ab|c</p><p>d|e</p>" yields
// "<p>abe</p>".
func removeRange(r tree.Range) (string, error) {
	if t, ok := r.Start.Node.(*tree.Text); ok && r.Start.Node == r.End.Node {
		return t.DeleteRange(r.Start.Offset, r.End.Offset)
	}

	// End first: splitting there never moves the start.
	right, err := toGap(r.End)
	if err != nil {
		return "", err
	}
	left, err := toGap(r.Start)
	if err != nil {
		return "", err
	}
	lca := tree.CommonAncestor(left.parent, right.parent)
	if lca == nil {
		return "", tree.ErrNotDescendant
	}
	lefts := ancestry(left.parent, lca)
	rights := ancestry(right.parent, lca)

	for i, e := range lefts {
		if i == 0 {
			e.RemoveRange(left.index(), e.Len())
			continue
		}
		e.RemoveRange(e.IndexOf(lefts[i-1])+1, e.Len())
	}
	for i, e := range rights {
		if i == 0 {
			e.RemoveRange(0, right.index())
			continue
		}
		e.RemoveRange(0, e.IndexOf(rights[i-1]))
	}

	lo := left.index()
	if len(lefts) > 0 {
		lo = lca.IndexOf(lefts[len(lefts)-1]) + 1
	}
	hi := right.index()
	if len(rights) > 0 {
		hi = lca.IndexOf(rights[len(rights)-1])
	}
	lca.RemoveRange(lo, hi)

	for i, j := len(lefts)-1, len(rights)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		a, b := lefts[i], rights[j]
		for _, c := range b.RemoveRange(0, b.Len()) {
			a.AppendChild(c)
		}
		tree.Remove(b)
	}

	tree.MergeAdjacentText(lca)
	for _, e := range lefts {
		tree.MergeAdjacentText(e)
	}
	for _, e := range rights {
		if e.Parent() != nil {
			tree.MergeAdjacentText(e)
		}
	}
	return "", nil
}
