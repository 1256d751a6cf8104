package dispatch

import "github.com/dshills/keybind/internal/document"

// pendingState holds everything the controller needs to resolve a
// multi-stroke chord: the strokes seen so far, the events that were
// suppressed while the chord stayed open, the best exact match observed
// along the way (if any), and the timer racing against the next stroke.
type pendingState struct {
	sequence      []Stroke
	suppressed    []document.Event
	deferredExact *deferredMatch
	timer         *ambiguityTimer
}

// deferredMatch freezes the exact-match candidate set and triggering
// event at the moment an exact+partial transition captured them, so a
// later timeout can commit to exactly what was true then even if the
// registry has changed since.
type deferredMatch struct {
	bindings []*normalizedBinding
	event    document.Event
}

// processLocked runs one stroke through the state machine. It assumes
// e.mu is held by the caller.
func (e *Engine) processLocked(ev document.Event) {
	k := e.canon.Canonicalize(ev)
	if k == "" {
		return
	}

	e.pending.sequence = append(e.pending.sequence, k)
	snapshot := e.registry.snapshot()
	exact, partial := classify(snapshot, e.pending.sequence)

	if len(partial) > 0 && selectorLiveOnPath(partial, e.sel, ev) {
		ev.PreventDefault()
		ev.StopPropagation()
		e.pending.suppressed = append(e.pending.suppressed, ev)
		if len(exact) > 0 {
			e.pending.deferredExact = &deferredMatch{bindings: exact, event: ev}
		}
		e.armTimerLocked()
		return
	}

	if len(exact) > 0 {
		e.dispatchAndResetLocked(exact, ev)
		return
	}

	e.abortLocked()
}

// dispatchAndResetLocked fires candidates against the current event and
// returns the controller to S0 without touching suppressed events: a
// successful exact match implicitly releases whatever was suppressed
// earlier in the same chord.
func (e *Engine) dispatchAndResetLocked(candidates []*normalizedBinding, ev document.Event) {
	e.stopTimerLocked()
	e.pending = pendingState{}
	scopedDispatch(candidates, e.sel, e.sink, ev)
}

// abortLocked returns the controller to S0 because no binding could
// possibly complete the current sequence, replaying anything that had
// been suppressed so listeners downstream of the engine still see it.
func (e *Engine) abortLocked() {
	e.stopTimerLocked()
	suppressed := e.pending.suppressed
	e.pending = pendingState{}
	if len(suppressed) > 0 {
		e.replayLocked(suppressed)
	}
}

func (e *Engine) armTimerLocked() {
	e.stopTimerLocked()
	e.pending.timer = newAmbiguityTimer(e.ambiguityWindow, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.onTimerFired()
	})
}

func (e *Engine) stopTimerLocked() {
	if e.pending.timer != nil {
		e.pending.timer.stop()
		e.pending.timer = nil
	}
}

// onTimerFired runs when the ambiguity window elapses with no further
// stroke arriving. It is called with e.mu held, from the timer's own
// goroutine.
func (e *Engine) onTimerFired() {
	if e.closed {
		return
	}

	deferred := e.pending.deferredExact
	suppressed := e.pending.suppressed
	e.pending = pendingState{}

	if deferred != nil {
		scopedDispatch(deferred.bindings, e.sel, e.sink, deferred.event)
		return
	}
	if len(suppressed) > 0 {
		e.replayLocked(suppressed)
	}
}
