// Package tree provides the structural document model of the editor.
//
// A document is a strict tree of nodes. There are exactly two node variants:
//
//   - *Text: an ordered run of characters, addressed by grapheme offset
//   - *Element: an ordered, mutable list of child nodes with a tag and traits
//
// # Token Classification
//
// Every node falls into one of four token kinds, decided only by the node
// itself and never by its position:
//
//   - KindText: a text node; one token per grapheme cluster
//   - KindHint: a decorative element (Traits.Hint); zero tokens
//   - KindLabel: an opaque widget (Traits.Atomic); one open and one close token
//   - KindContainer: any other element; open + close + its children
//
// Hint subtrees are skipped by every walk in this package and are never
// returned as a navigable Location.
//
// # Locations
//
// A Location pairs a node with an offset. For text the offset is a grapheme
// index in 0..Len; for elements it is a child gap index in 0..Len. A Label
// is addressed only as (label, 0), meaning "inside the atomic unit".
//
// When two locations denote the same token boundary, CanonicalGap and
// Canonical pick the one anchored in a text node, preferring the end of the
// preceding text over the start of the following one.
package tree
