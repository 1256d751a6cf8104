package dispatch

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keybind/internal/diagnostics"
	"github.com/dshills/keybind/internal/document"
)

// DefaultAmbiguityWindow is how long the controller waits for a
// continuing stroke before committing to the best exact match seen so
// far, or replaying what it suppressed if none was ever seen.
const DefaultAmbiguityWindow = time.Second

// Engine is the keyboard-shortcut dispatcher: a binding registry plus the
// pending-state controller that turns a stream of key events into
// resolved, scoped handler invocations.
//
// Register and Close may be called from any goroutine. Process is not
// safe for concurrent use with itself; the controller assumes it, and
// the timer callback it arms, are the only two paths that ever touch
// pending state, serialized by a single mutex.
type Engine struct {
	mu sync.Mutex

	registry *Registry
	canon    Canonicalizer
	sel      SelectorEngine
	sink     diagnostics.Sink
	replayer Replayer

	ambiguityWindow time.Duration

	pending   pendingState
	replaying bool
	closed    bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithAmbiguityWindow overrides DefaultAmbiguityWindow.
func WithAmbiguityWindow(d time.Duration) Option {
	return func(e *Engine) { e.ambiguityWindow = d }
}

// WithReplayer installs the collaborator used to redeliver suppressed
// events. Without one, suppressed events are simply dropped on abort,
// which is only appropriate for an engine with no host wired behind it.
func WithReplayer(r Replayer) Option {
	return func(e *Engine) { e.replayer = r }
}

// New constructs an Engine. canon and sel must not be nil; sink may be
// nil, in which case diagnostics are discarded.
func New(canon Canonicalizer, sel SelectorEngine, sink diagnostics.Sink, opts ...Option) *Engine {
	if sink == nil {
		sink = diagnostics.NullSink
	}
	e := &Engine{
		registry:        newRegistry(),
		canon:           canon,
		sel:             sel,
		sink:            sink,
		replayer:        noopReplayer{},
		ambiguityWindow: DefaultAmbiguityWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register validates and installs bindings, returning a Handle that can
// later revoke exactly this batch. A binding that fails validation
// (empty sequence, invalid selector, nil handler, or an unparsable
// stroke spec) is skipped and diagnosed through the engine's sink rather
// than failing the whole call.
func (e *Engine) Register(bindings []Binding) (*Handle, error) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, ErrEngineClosed
	}

	id := uuid.New()
	e.registry.register(id, bindings, e.canon, e.sel, e.sink)
	return &Handle{id: id, registry: e.registry}, nil
}

// AllBindings returns every currently registered binding, for a host
// building a help overlay.
func (e *Engine) AllBindings() []Binding {
	return e.registry.allBindings()
}

// Pending returns the strokes accumulated in an open chord, if any.
func (e *Engine) Pending() ([]Stroke, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending.sequence) == 0 {
		return nil, false
	}
	out := make([]Stroke, len(e.pending.sequence))
	copy(out, e.pending.sequence)
	return out, true
}

// Process feeds one key event through the pending-state controller. It is
// the engine's only entry point for live input; a closed engine, or a
// call arriving while the controller is mid-replay, is a silent no-op.
func (e *Engine) Process(ev document.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.replaying {
		return
	}
	e.processLocked(ev)
}

// Close stops any armed timer and discards pending state without
// replaying it. Subsequent Process calls are no-ops and Register returns
// ErrEngineClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.stopTimerLocked()
	e.pending = pendingState{}
}
