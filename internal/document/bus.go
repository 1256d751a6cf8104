package document

// Listener receives a bubbling event. It may call PreventDefault or
// StopPropagation on the event it is given.
type Listener func(Event)

// Bus is an in-memory bubble-phase event propagation model. It exists so
// that a shortcut engine can sit as one listener among several attached to
// the document tree: when the engine does not suppress a key (or replays
// one it previously withheld), the event keeps bubbling past it exactly as
// it would in a browser, reaching listeners attached to ancestor nodes,
// including the document root.
type Bus struct {
	listeners map[Node][]Listener
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[Node][]Listener)}
}

// AddEventListener registers l to run whenever a bubbling event's path
// passes through n. The returned func removes the listener.
func (b *Bus) AddEventListener(n Node, l Listener) (remove func()) {
	removed := false
	b.listeners[n] = append(b.listeners[n], func(e Event) {
		if !removed {
			l(e)
		}
	})
	return func() { removed = true }
}

// Dispatch walks the path from e's target to the document root, invoking
// every listener registered on each node in turn, closest node first. It
// stops early if a listener calls StopPropagation.
func (b *Bus) Dispatch(e *KeyPressEvent) {
	for _, n := range Path(e.Target()) {
		view := e.withCurrentTarget(n)
		for _, l := range b.listeners[n] {
			l(view)
			if view.PropagationStopped() {
				e.propagationStopped = view.propagationStopped
				e.defaultPrevented = view.defaultPrevented
				return
			}
		}
		e.defaultPrevented = view.defaultPrevented
	}
}

// Replay redispatches e, a previously-suppressed event the dispatcher is
// now releasing, as a fresh Dispatch. It satisfies the narrow Replayer
// interface the dispatch engine declares for itself, without this
// package needing to import that one.
func (b *Bus) Replay(e Event) {
	kp, ok := e.(*KeyPressEvent)
	if !ok {
		return
	}
	b.Dispatch(kp)
}
