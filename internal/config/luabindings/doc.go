// Package luabindings loads keyboard-shortcut bindings from a Lua script
// that calls a single global function:
//
//	bind("ctrl+s", "editor", "save")
//	bind("g g", "*", "goto-top", "Jump to the top", "navigation")
//
// The script runs in a sandboxed Lua state with no io, os, debug, or
// package libraries, so a binding file can compute sequences or build
// them in a loop but cannot touch the filesystem or spawn processes.
// Action names are resolved against a caller-supplied ActionTable after
// the script finishes running, the same way internal/config/jsonbindings
// resolves its "action" field.
package luabindings
