// Package script replays YAML editing scripts against a document.
//
// A script names a starting tree, an optional selection and a list of
// steps. Each step performs exactly one gesture, runs a Lua macro, or
// checks the document:
//
//	name: bold a word
//	tree:
//	  tag: doc
//	  children:
//	    - tag: p
//	      children: [hello world]
//	selection: [1, 6]
//	steps:
//	  - format: b
//	  - expect:
//	      tree: '<doc><p><b>"hello"</b>" world"</p></doc>'
//	  - undo: 1
//	  - lua: doc.select(-2); doc.type("!")
//	  - expect: {text: "hello world!"}
//
// Tree nodes are written as a bare string (text), {tag, children} (an
// element), {label, children} (an atomic widget) or {hint: true,
// children} (a zero-width marker).
package script
