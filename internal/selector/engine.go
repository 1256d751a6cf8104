package selector

import "github.com/dshills/keybind/internal/document"

// Engine is a stateless, zero-value adapter exposing IsValid, Specificity
// and Matches as methods, so callers that only know a narrow matching interface (rather
// than this package's concrete Selector type) can still use it.
type Engine struct{}

// IsValid reports whether sel parses without error.
func (Engine) IsValid(sel string) bool {
	return IsValid(sel)
}

// Specificity parses sel and returns its specificity score, or 0 if it
// does not parse. Callers are expected to have already validated sel
// with IsValid at registration time.
func (Engine) Specificity(sel string) int {
	s, err := Parse(sel)
	if err != nil {
		return 0
	}
	return s.Specificity()
}

// Matches reports whether sel matches n.
func (Engine) Matches(n document.Node, sel string) bool {
	s, err := Parse(sel)
	if err != nil {
		return false
	}
	return s.Matches(document.Path(n))
}
