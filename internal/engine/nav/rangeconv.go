package nav

import (
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// Converter translates between bias intervals and structural ranges using
// a configured resolver.
type Converter struct {
	Resolver position.Resolver
}

// ResolveInterval resolves both ends of iv without touching the tree.
func (c Converter) ResolveInterval(root *tree.Element, iv position.Interval) (tree.Range, error) {
	iv, err := iv.Normalize(position.Size(root))
	if err != nil {
		return tree.Range{}, err
	}
	start, err := c.Resolver.BiasToLocation(root, iv.Start)
	if err != nil {
		return tree.Range{}, err
	}
	if iv.IsCollapsed() {
		return tree.Collapsed(start), nil
	}
	end, err := c.Resolver.BiasToLocation(root, iv.End)
	if err != nil {
		return tree.Range{}, err
	}
	return tree.Range{Start: start, End: end}, nil
}

// IntervalToRange resolves iv inside root. An end that lands on a gap of
// root itself gets a concrete anchor: an empty text node inserted at that
// gap. The inserted anchors are returned so the caller can remove them
// when it undoes its edit.
func (c Converter) IntervalToRange(root *tree.Element, iv position.Interval) (tree.Range, []*tree.Text, error) {
	r, err := c.ResolveInterval(root, iv)
	if err != nil {
		return tree.Range{}, nil, err
	}
	if root.IsAtomic() {
		return r, nil, nil
	}

	var anchors []*tree.Text
	collapsed := r.IsCollapsed()
	// End first: inserting there never shifts the start gap.
	if r.End.Node == tree.Node(root) {
		t, err := anchorAt(root, r.End.Offset)
		if err != nil {
			return tree.Range{}, nil, err
		}
		anchors = append(anchors, t)
		r.End = tree.At(t, 0)
		if collapsed {
			r.Start = r.End
			return r, anchors, nil
		}
	}
	if r.Start.Node == tree.Node(root) {
		t, err := anchorAt(root, r.Start.Offset)
		if err != nil {
			return tree.Range{}, nil, err
		}
		anchors = append(anchors, t)
		r.Start = tree.At(t, 0)
	}
	return r, anchors, nil
}

// RangeToInterval converts r to an ordered bias interval.
func (c Converter) RangeToInterval(root *tree.Element, r tree.Range) (position.Interval, error) {
	s, err := c.Resolver.LocationToBias(root, r.Start)
	if err != nil {
		return position.Interval{}, err
	}
	e, err := c.Resolver.LocationToBias(root, r.End)
	if err != nil {
		return position.Interval{}, err
	}
	return position.Span(min(s, e), max(s, e)), nil
}

func anchorAt(root *tree.Element, i int) (*tree.Text, error) {
	t := tree.NewText("")
	if err := root.InsertChild(i, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RemoveAnchors detaches anchors that are still empty.
func RemoveAnchors(anchors []*tree.Text) {
	for _, t := range anchors {
		if t.Len() == 0 && t.Parent() != nil {
			tree.Remove(t)
		}
	}
}

var defaultConverter Converter

// ResolveInterval resolves iv with the default resolver.
func ResolveInterval(root *tree.Element, iv position.Interval) (tree.Range, error) {
	return defaultConverter.ResolveInterval(root, iv)
}

// IntervalToRange resolves iv with the default resolver.
func IntervalToRange(root *tree.Element, iv position.Interval) (tree.Range, []*tree.Text, error) {
	return defaultConverter.IntervalToRange(root, iv)
}

// RangeToInterval converts r with the default resolver.
func RangeToInterval(root *tree.Element, r tree.Range) (position.Interval, error) {
	return defaultConverter.RangeToInterval(root, r)
}
