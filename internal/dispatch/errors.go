package dispatch

import "errors"

var (
	// ErrEngineClosed is returned by Register once Close has run.
	ErrEngineClosed = errors.New("dispatch: engine is closed")

	// ErrNilBinding marks a binding with no handler; such a binding could
	// never consume an event, so it is rejected at registration rather
	// than silently carried as permanently-falsy.
	ErrNilBinding = errors.New("dispatch: binding has no handler")

	errEmptySequence   = errors.New("dispatch: binding sequence is empty")
	errInvalidSelector = errors.New("dispatch: invalid selector")
	errEmptyStroke     = errors.New("dispatch: stroke canonicalized to an empty token")
)
