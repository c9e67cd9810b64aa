// Package config loads inkwell settings.
//
// Settings come from three layers, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, which may pull in others with "@include"
//  3. INKWELL_ environment variables
//
// The merged layers are decoded strictly into Config: a key that no
// setting claims is an error rather than silently ignored.
//
// # Example
//
//	[history]
//	max_entries = 500
//	merge = true
//
//	[editing]
//	word_separators = " -"
//	normalize = "nfc"
//
//	[engine]
//	max_depth = 256
//
//	[log]
//	level = "debug"
//
// The same settings can be given as INKWELL_HISTORY_MAX_ENTRIES=500,
// INKWELL_LOG_LEVEL=debug and so on.
//
// # Sub-packages
//
//   - loader: TOML and environment sources
//   - watcher: change notification for config and script files
package config
