// Package position converts between structural tree locations and flat
// token offsets ("biases").
//
// A bias counts tokens from the inner start of a scoping root. Negative
// biases count from the end: -1 is the last addressable point, so for a
// root of size n the valid range is [-n-1, n].
//
// Token sizes:
//
//	hint        0
//	label       2 (open + close; the single point between them is (label, 0))
//	container   2 + children
//	text        number of grapheme clusters
//
// LocationToBias and BiasToLocation are inverse up to token equivalence:
// BiasToLocation always returns the canonical location of a boundary (see
// tree.CanonicalGap), so
//
//	LocationToBias(root, BiasToLocation(root, b)) == normalize(b)
//
// for every bias in range.
package position
