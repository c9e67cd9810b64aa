// Package cursor provides the selection value type of a document.
//
// Selections use an anchor/head model over biases:
//   - Anchor: the bias where the selection started
//   - Head: the caret bias (where typing would occur)
//
// Biases stay meaningful across structural edits that do not touch the
// selected region, which is why the document stores them instead of
// structural locations.
package cursor
