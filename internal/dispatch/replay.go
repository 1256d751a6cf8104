package dispatch

import "github.com/dshills/keybind/internal/document"

// Replayer redelivers a cloned event so that listeners the engine bypassed
// while holding a chord open can observe it, as though the original had
// never been intercepted. Implemented by document.Bus.
type Replayer interface {
	Replay(clone document.Event)
}

type noopReplayer struct{}

func (noopReplayer) Replay(document.Event) {}

// replayLocked redelivers every suppressed event in order. It is called
// with e.mu held and must release it before calling out to e.replayer:
// the replayer typically redispatches onto the same bus the engine itself
// listens on, which means the engine's own Process method is likely to be
// re-entered synchronously for each clone. e.replaying makes that
// re-entrant call a no-op instead of a deadlock or a second round of
// matching against events the controller has already resolved.
func (e *Engine) replayLocked(events []document.Event) {
	e.replaying = true
	e.mu.Unlock()

	for _, ev := range events {
		e.replayer.Replay(ev.Clone())
	}

	e.mu.Lock()
	e.replaying = false
}
