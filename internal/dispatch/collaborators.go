package dispatch

import "github.com/dshills/keybind/internal/document"

// Stroke mirrors stroke.Stroke without importing internal/stroke, so this
// package imports neither internal/stroke nor internal/selector.
type Stroke = string

// Canonicalizer turns a live key event into its canonical Stroke and
// parses a user-authored spec string into the same form. Implemented by
// stroke.Canonicalizer.
type Canonicalizer interface {
	Canonicalize(e document.Event) Stroke
	Normalize(spec string) (Stroke, error)
}

// SelectorEngine validates, scores and matches selector strings against
// document nodes. Implemented by selector.Engine.
type SelectorEngine interface {
	IsValid(sel string) bool
	Specificity(sel string) int
	Matches(n document.Node, sel string) bool
}
