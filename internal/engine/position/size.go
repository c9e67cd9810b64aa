package position

import "github.com/dshills/inkwell/internal/engine/tree"

// Boundary is the token cost of one open or close marker.
const Boundary = 1

// Size returns the token size of n measured as a scoping root, i.e.
// without its own open/close pair.
func Size(n tree.Node) int {
	return TokenSize(n, false)
}

// SizeWithBoundary returns the token size of n measured as a sibling.
func SizeWithBoundary(n tree.Node) int {
	return TokenSize(n, true)
}

// TokenSize returns the token size of n. includeSelfBoundary adds the
// node's own open/close pair for labels and containers.
func TokenSize(n tree.Node, includeSelfBoundary bool) int {
	switch tree.Classify(n) {
	case tree.KindText:
		return n.(*tree.Text).Len()
	case tree.KindHint:
		return 0
	case tree.KindLabel:
		if includeSelfBoundary {
			return 2 * Boundary
		}
		return 0
	}

	e := n.(*tree.Element)
	total := 0
	for _, c := range e.Children() {
		total += TokenSize(c, true)
	}
	if includeSelfBoundary {
		total += 2 * Boundary
	}
	return total
}

// SizeOf sums the sibling sizes of a node list.
func SizeOf(nodes []tree.Node) int {
	total := 0
	for _, n := range nodes {
		total += SizeWithBoundary(n)
	}
	return total
}
