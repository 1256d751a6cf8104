package dispatch

import "time"

// ambiguityTimer wraps time.AfterFunc behind a narrow type so the
// pending-state controller can be read without the mechanics of arming
// and disarming a *time.Timer bleeding into it.
type ambiguityTimer struct {
	t *time.Timer
}

func newAmbiguityTimer(d time.Duration, f func()) *ambiguityTimer {
	return &ambiguityTimer{t: time.AfterFunc(d, f)}
}

func (a *ambiguityTimer) stop() {
	if a == nil || a.t == nil {
		return
	}
	a.t.Stop()
}
