// Package macro runs Lua macros against an inkwell document.
//
// A macro is plain Lua with a global doc table bound to one
// engine.Document:
//
//	doc.select(6)
//	doc.type(" world")
//	doc.group("shout", function()
//	    doc.select(1, -1)
//	    doc.format("b")
//	end)
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened, minus the
// loaders (dofile, loadfile, load, loadstring, require, module), so
// macros cannot reach the file system or pull in other code.
// print writes to the state's output instead of stdout.
//
// Every run is bounded by a context deadline (DefaultExecutionTimeout
// unless configured); gopher-lua checks the context between
// instructions, so runaway loops are stopped.
//
// # Errors
//
// An editing error raised inside doc.* surfaces from Run as a
// *ScriptError that unwraps to the original Go error, so callers can
// match it with errors.Is.
package macro
