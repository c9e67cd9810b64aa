// Package nav moves locations through a document tree one token at a time.
//
// Every function takes the scoping root first. Reaching the edge of the
// root is not an error: the functions return ok == false. An error is
// returned only for caller bugs, such as a location outside the root.
//
// Stepping rules:
//
//   - inside a text node, move one grapheme
//   - at a text boundary, hop to the nearest non-hint sibling: enter a
//     container through its open marker, or land on (label, 0)
//   - at the edge of a container with no further sibling, leave it through
//     its close (or open) marker
//
// All returned locations are canonical (see tree.Canonical), so stepping
// back after stepping forward returns the starting location whenever the
// start was canonical.
package nav
