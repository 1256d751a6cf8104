package dispatch

import (
	"sync"

	"github.com/google/uuid"
)

// Binding is a user-authored key binding, as passed to Engine.Register.
// Sequence entries are parsed with the engine's Canonicalizer, so any
// spelling Canonicalizer.Normalize accepts ("Ctrl+S", "<C-s>", "ctrl+s")
// may be used interchangeably.
type Binding struct {
	Sequence    []string
	Selector    string
	Handler     func(args any) bool
	Args        any
	Description string
	Category    string
}

// normalizedBinding is the registry's internal representation, produced
// once a Binding has been validated against the Canonicalizer and
// SelectorEngine at registration time.
type normalizedBinding struct {
	sequence    []Stroke
	selector    string
	specificity int
	handler     func(args any) bool
	args        any
	description string
	category    string
	batchID     uuid.UUID
}

// Handle is the idempotent revocation capability returned by Register. It
// closes over the batch identifier assigned to one Register call, so
// Revoke undoes exactly that call's bindings regardless of what has been
// registered since.
type Handle struct {
	id       uuid.UUID
	registry *Registry

	mu      sync.Mutex
	revoked bool
}

// ID returns the handle's batch identifier, for diagnostics.
func (h *Handle) ID() string { return h.id.String() }

// Revoke removes every binding registered by the call that produced h.
// Calling it more than once, from any number of goroutines, is a no-op
// after the first.
func (h *Handle) Revoke() {
	h.mu.Lock()
	if h.revoked {
		h.mu.Unlock()
		return
	}
	h.revoked = true
	h.mu.Unlock()

	h.registry.unregisterBatch(h.id)
}
