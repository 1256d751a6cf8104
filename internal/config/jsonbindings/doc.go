// Package jsonbindings loads and saves keyboard-shortcut bindings stored as
// a JSON array of records:
//
//	[
//	  {"sequence": "ctrl+s", "selector": "editor", "action": "save"},
//	  {"sequence": "g g", "selector": "*", "action": "goto-top", "description": "Jump to the top", "category": "navigation"}
//	]
//
// Loading resolves each record's action name against a caller-supplied
// ActionTable, since a JSON file cannot itself carry a Go function value.
package jsonbindings
