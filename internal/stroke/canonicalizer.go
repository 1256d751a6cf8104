package stroke

import "github.com/dshills/keybind/internal/document"

// Canonicalizer is a stateless, zero-value adapter exposing Canonicalize
// and Parse (as Normalize) as methods, so callers that only know a narrow collaborator
// interface can use this package without importing its concrete types.
type Canonicalizer struct{}

// Canonicalize implements the Canonicalize method of that interface.
func (Canonicalizer) Canonicalize(e document.Event) Stroke {
	return Canonicalize(e)
}

// Normalize implements the Normalize method of that interface.
func (Canonicalizer) Normalize(spec string) (Stroke, error) {
	return Parse(spec)
}
