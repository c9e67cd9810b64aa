// Package history provides undo/redo for the document editing core.
//
// # Commands
//
// A Command is a reversible edit with a stable uuid identity, an Execute
// and Undo pair and a TryMerge predicate. Concrete document commands live
// in package edit; this package only orders them.
//
// # History Stack
//
// History keeps a done stack and an undone stack:
//
//	h := history.New(history.WithMaxEntries(1000))
//
//	h.Execute(cmd, false) // run and record
//	h.Execute(cmd, true)  // record an edit that was already applied
//
//	h.Undo()
//	h.Redo()
//
// A new Execute clears the undone stack. When merging is enabled the top
// entry may absorb the next command, so that a run of typed characters
// undoes as one word. Only the most recently pushed entry can absorb; an
// undo, redo, group end or BreakMerge closes it.
//
// # Events
//
// Listeners passed with WithListener receive an Event after every execute,
// undo and redo. The document uses them to move its selection.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	h.BeginGroup("Paste")
//	// ... multiple edits ...
//	h.EndGroup()
//
// Transaction and GroupScope wrap the same mechanism.
package history
