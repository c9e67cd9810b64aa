// Package engine provides the document facade of the inkwell editing core.
//
// A Document owns one tree, its selection and its undo history. Gestures
// (typing, deletion, formatting, caret motion) are translated into bias
// based commands from the edit package and run through the history, which
// moves the selection as commands execute, undo and redo.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - tree: nodes, locations and the token classifier
//   - position: token sizes and the bias/location conversion
//   - nav: token and word stepping, interval/range conversion
//   - history: command-based undo/redo with merging and grouping
//   - edit: the concrete commands and their JSON journal
//   - cursor: the selection value type
//   - softline: visual line queries against a rendering surface
//
// # Basic Usage
//
//	root := tree.NewElement("doc", tree.NewElement("p", tree.NewText("hello")))
//	d := engine.New(root)
//
//	d.Select(6, 6)    // caret after "hello"
//	d.Type(" world")  // <doc><p>"hello world"</p></doc>
//	d.Backspace()     // removes "d"
//	d.Undo()          // restores "d"
//
// Consecutive single-character edits merge into one undo entry until a
// word separator is typed or the caret is moved.
//
// # Concurrency
//
// A Document is single-threaded: every gesture completes synchronously
// before the next starts, and no locking is performed.
package engine
