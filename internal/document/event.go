package document

// Event is the host's key-press event as seen by the dispatcher and by
// ordinary (non-shortcut) listeners. It mirrors a DOM KeyboardEvent closely
// enough that a web-style selector/propagation model translates directly:
// Target is where the key physically landed (the focused node), and
// CurrentTarget is the node whose listener is currently being invoked as
// the event bubbles from Target toward the document root.
type Event interface {
	// Target returns the node the event originated at.
	Target() Node

	// CurrentTarget returns the node whose listener is presently running.
	CurrentTarget() Node

	// Key returns the primary key identity.
	Key() Key

	// Rune returns the character for KeyRune events.
	Rune() rune

	// Modifiers returns the held modifier set.
	Modifiers() Modifier

	// PreventDefault suppresses the host's default handling of this event.
	PreventDefault()

	// StopPropagation halts further bubbling of this event.
	StopPropagation()

	// DefaultPrevented reports whether PreventDefault was called.
	DefaultPrevented() bool

	// PropagationStopped reports whether StopPropagation was called.
	PropagationStopped() bool

	// Clone returns a fresh event with the same type, target, and key
	// fields, but with neither default-prevented nor propagation-stopped
	// set. Used by the dispatcher to replay a suppressed event.
	Clone() Event
}

// KeyPressEvent is the reference Event implementation used by this
// module's tests, demo, and terminal host.
type KeyPressEvent struct {
	target        Node
	currentTarget Node
	key           Key
	r             rune
	mods          Modifier

	defaultPrevented   bool
	propagationStopped bool
}

// NewKeyPressEvent creates an event targeted at target. CurrentTarget
// starts out equal to Target, as it does for a freshly-dispatched DOM
// event before any listener has run.
func NewKeyPressEvent(target Node, key Key, r rune, mods Modifier) *KeyPressEvent {
	return &KeyPressEvent{target: target, currentTarget: target, key: key, r: r, mods: mods}
}

// Target implements Event.
func (e *KeyPressEvent) Target() Node { return e.target }

// CurrentTarget implements Event.
func (e *KeyPressEvent) CurrentTarget() Node { return e.currentTarget }

// Key implements Event.
func (e *KeyPressEvent) Key() Key { return e.key }

// Rune implements Event.
func (e *KeyPressEvent) Rune() rune { return e.r }

// Modifiers implements Event.
func (e *KeyPressEvent) Modifiers() Modifier { return e.mods }

// PreventDefault implements Event.
func (e *KeyPressEvent) PreventDefault() { e.defaultPrevented = true }

// StopPropagation implements Event.
func (e *KeyPressEvent) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented implements Event.
func (e *KeyPressEvent) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped implements Event.
func (e *KeyPressEvent) PropagationStopped() bool { return e.propagationStopped }

// Clone implements Event. The clone's CurrentTarget is reset to Target, as
// it would be for any newly-dispatched event.
func (e *KeyPressEvent) Clone() Event {
	return &KeyPressEvent{target: e.target, currentTarget: e.target, key: e.key, r: e.r, mods: e.mods}
}

// withCurrentTarget returns a shallow copy of e with CurrentTarget set to n.
// Used by Bus while walking the bubble path; it never mutates e itself,
// since the same *KeyPressEvent value is shared across every node visited.
func (e *KeyPressEvent) withCurrentTarget(n Node) *KeyPressEvent {
	clone := *e
	clone.currentTarget = n
	return &clone
}
