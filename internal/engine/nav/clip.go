package nav

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/engine/tree"
)

// ClipRange clamps r to the inner boundary of node. The returned range is
// expressed relative to node as the scoping root. ok is false when r and
// node do not overlap at all; touching the boundary counts as overlap.
func (c Converter) ClipRange(node *tree.Element, r tree.Range) (tree.Range, bool, error) {
	top, ok := tree.RootOf(node).(*tree.Element)
	if !ok {
		return tree.Range{}, false, fmt.Errorf("clip to <%s>: %w", node.Tag, tree.ErrNotElement)
	}
	iv, err := c.RangeToInterval(top, r)
	if err != nil {
		return tree.Range{}, false, err
	}

	var lo int
	if node != top {
		if lo, err = c.Resolver.LocationToBias(top, tree.At(node, 0)); err != nil {
			return tree.Range{}, false, err
		}
	}
	hi := lo + position.Size(node)
	if iv.End < lo || iv.Start > hi {
		return tree.Range{}, false, nil
	}

	start, err := c.Resolver.BiasToLocation(node, max(iv.Start, lo)-lo)
	if err != nil {
		return tree.Range{}, false, err
	}
	end, err := c.Resolver.BiasToLocation(node, min(iv.End, hi)-lo)
	if err != nil {
		return tree.Range{}, false, err
	}
	return tree.Range{Start: start, End: end}, true, nil
}

// ClipLocation clamps loc to the inner boundary of node.
func (c Converter) ClipLocation(node *tree.Element, loc tree.Location) (tree.Location, bool, error) {
	r, ok, err := c.ClipRange(node, tree.Collapsed(loc))
	return r.Start, ok, err
}

// ClipRange clamps r with the default resolver.
func ClipRange(node *tree.Element, r tree.Range) (tree.Range, bool, error) {
	return defaultConverter.ClipRange(node, r)
}

// ClipLocation clamps loc with the default resolver.
func ClipLocation(node *tree.Element, loc tree.Location) (tree.Location, bool, error) {
	return defaultConverter.ClipLocation(node, loc)
}
