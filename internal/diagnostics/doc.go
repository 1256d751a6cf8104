// Package diagnostics provides the structured logging used to report
// dispatcher activity: skipped invalid bindings, panicking handlers, and
// binding-file reload results. Nothing here returns an error
// to a caller; it is an observability sink, not a validation layer.
package diagnostics
