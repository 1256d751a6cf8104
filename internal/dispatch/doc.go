// Package dispatch implements the core keyboard-shortcut matching and
// scheduling engine: a binding registry, a prefix/exact sequence matcher, a
// selector-scoped ancestor-walk dispatcher, and the pending-state
// controller that accumulates multi-stroke chords behind an ambiguity
// timer and replays suppressed events when a chord is abandoned.
//
// The engine treats its collaborators — the stroke canonicalizer and the
// selector engine — as interfaces declared in this package rather than
// importing their concrete packages, the same way the codebase this one
// is modeled on keeps its event-dispatch core decoupled from the packages
// that implement its handler types.
package dispatch
