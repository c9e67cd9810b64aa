package position

import (
	"fmt"

	"github.com/dshills/inkwell/internal/engine/tree"
)

// DefaultMaxDepth bounds recursion when resolving biases.
const DefaultMaxDepth = 256

// Resolver converts between locations and biases. The zero value uses
// DefaultMaxDepth.
type Resolver struct {
	// MaxDepth limits how many container levels a conversion may cross.
	MaxDepth int
}

// NewResolver creates a resolver with the given depth limit.
func NewResolver(maxDepth int) Resolver {
	return Resolver{MaxDepth: maxDepth}
}

func (r Resolver) maxDepth() int {
	if r.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.MaxDepth
}

// LocationToBias returns the bias of loc relative to root. Locations inside
// a hint are snapped to the gap next to the hint first.
func (r Resolver) LocationToBias(root *tree.Element, loc tree.Location) (int, error) {
	if root == nil || loc.Node == nil || !tree.Contains(root, loc.Node) {
		return 0, fmt.Errorf("location %s: %w", loc, tree.ErrNotDescendant)
	}
	loc = tree.SnapIntoLabel(root, tree.SnapOutOfHint(root, loc))
	if err := tree.CheckOffset(loc); err != nil {
		return 0, err
	}

	var used int
	switch n := loc.Node.(type) {
	case *tree.Text:
		used = loc.Offset
	case *tree.Element:
		if !n.IsAtomic() {
			used = SizeOf(n.Children()[:loc.Offset])
		}
		if n != root {
			// Inside n: its own open marker is behind us.
			used += Boundary
		}
	}

	limit := r.maxDepth()
	var cur tree.Node = loc.Node
	for depth := 0; cur != tree.Node(root); depth++ {
		if depth > limit {
			return 0, &NotFoundError{Bias: used, Err: ErrDepthExceeded}
		}
		parent := cur.Parent()
		used += SizeOf(parent.Children()[:parent.IndexOf(cur)])
		cur = parent
		if cur == tree.Node(root) {
			break
		}
		// Crossing the open marker of the parent.
		used += Boundary
	}
	return used, nil
}

// BiasToLocation returns the canonical location at bias inside root.
// Boundary exhaustion is reported as a *NotFoundError.
func (r Resolver) BiasToLocation(root *tree.Element, bias int) (tree.Location, error) {
	b, err := NormalizeBias(bias, Size(root))
	if err != nil {
		return tree.Location{}, err
	}
	if root.IsAtomic() {
		return tree.At(root, 0), nil
	}
	return r.locate(root, b, bias, 0)
}

// locate descends into e with rem tokens left to consume.
func (r Resolver) locate(e *tree.Element, rem, bias, depth int) (tree.Location, error) {
	if depth > r.maxDepth() {
		return tree.Location{}, &NotFoundError{Bias: bias, Err: ErrDepthExceeded}
	}
	for i, c := range e.Children() {
		kind := tree.Classify(c)
		if kind == tree.KindHint {
			continue
		}
		if rem == 0 {
			return tree.CanonicalGap(e, i), nil
		}
		size := SizeWithBoundary(c)
		if rem < size {
			switch kind {
			case tree.KindText:
				return tree.At(c, rem), nil
			case tree.KindLabel:
				return tree.At(c, 0), nil
			default:
				return r.locate(c.(*tree.Element), rem-Boundary, bias, depth+1)
			}
		}
		rem -= size
	}
	if rem == 0 {
		return tree.CanonicalGap(e, e.Len()), nil
	}
	return tree.Location{}, &NotFoundError{Bias: bias, Err: ErrOutOfRange}
}

var defaultResolver Resolver

// LocationToBias converts with the default resolver.
func LocationToBias(root *tree.Element, loc tree.Location) (int, error) {
	return defaultResolver.LocationToBias(root, loc)
}

// BiasToLocation converts with the default resolver.
func BiasToLocation(root *tree.Element, bias int) (tree.Location, error) {
	return defaultResolver.BiasToLocation(root, bias)
}
