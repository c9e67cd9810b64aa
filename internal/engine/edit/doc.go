// Package edit implements the concrete document commands: text insertion,
// deletion, formatting (wrap and unwrap) and label insertion.
//
// Commands carry only a scoping root and bias intervals. Execute resolves
// the interval against the current tree, so a command stays valid across
// undo and redo of unrelated edits. Before mutating, a command captures a
// snapshot of the smallest subtree it will touch; Undo restores that
// snapshot. All preconditions are checked before the first mutation, so a
// failing Execute leaves the tree unchanged.
//
// Every command reports the selection before and after itself, which the
// document applies when history replays it.
package edit
