package dispatch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keybind/internal/diagnostics"
)

// Registry stores normalized bindings as a flat, insertion-ordered slice.
// Insertion order is significant: it is the tiebreak of last resort when
// two bindings share both target distance and selector specificity.
//
// Registry is safe for concurrent Register/Unregister from any goroutine.
// It is not itself responsible for serializing against Engine.Process;
// Engine takes a snapshot before each matching pass instead.
type Registry struct {
	mu       sync.RWMutex
	bindings []*normalizedBinding
}

func newRegistry() *Registry {
	return &Registry{}
}

// register validates and normalizes each entry in in, skipping (and
// diagnosing through sink) any that fail, then appends the survivors.
// It returns the number of bindings actually registered.
func (r *Registry) register(batchID uuid.UUID, in []Binding, canon Canonicalizer, sel SelectorEngine, sink diagnostics.Sink) int {
	normalized := make([]*normalizedBinding, 0, len(in))
	for _, b := range in {
		nb, err := normalize(b, batchID, canon, sel)
		if err != nil {
			sink.Log(diagnostics.LevelWarn, "skipping invalid binding", map[string]any{
				"error":    err.Error(),
				"selector": b.Selector,
			})
			continue
		}
		normalized = append(normalized, nb)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = append(r.bindings, normalized...)
	return len(normalized)
}

// unregisterBatch drops every binding carrying batchID, preserving the
// relative order of everything else.
func (r *Registry) unregisterBatch(batchID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.bindings[:0:0]
	for _, b := range r.bindings {
		if b.batchID != batchID {
			kept = append(kept, b)
		}
	}
	r.bindings = kept
}

// snapshot copies the current bindings so one matching pass sees a
// consistent view even if Register/Unregister run concurrently.
func (r *Registry) snapshot() []*normalizedBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*normalizedBinding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// allBindings exposes the registry's contents in their user-facing shape,
// for a host building a "what can I press here" overlay.
func (r *Registry) allBindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, Binding{
			Sequence:    append([]string(nil), b.sequence...),
			Selector:    b.selector,
			Handler:     b.handler,
			Args:        b.args,
			Description: b.description,
			Category:    b.category,
		})
	}
	return out
}

func normalize(b Binding, batchID uuid.UUID, canon Canonicalizer, sel SelectorEngine) (*normalizedBinding, error) {
	if len(b.Sequence) == 0 {
		return nil, errEmptySequence
	}
	if !sel.IsValid(b.Selector) {
		return nil, errInvalidSelector
	}
	if b.Handler == nil {
		return nil, ErrNilBinding
	}

	seq := make([]Stroke, len(b.Sequence))
	for i, raw := range b.Sequence {
		tok, err := canon.Normalize(raw)
		if err != nil {
			return nil, err
		}
		if tok == "" {
			return nil, errEmptyStroke
		}
		seq[i] = tok
	}

	return &normalizedBinding{
		sequence:    seq,
		selector:    b.Selector,
		specificity: sel.Specificity(b.Selector),
		handler:     b.Handler,
		args:        b.Args,
		description: b.Description,
		category:    b.Category,
		batchID:     batchID,
	}, nil
}
