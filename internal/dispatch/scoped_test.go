package dispatch

import (
	"testing"

	"github.com/dshills/keybind/internal/diagnostics"
)

func TestInvokeHandlerRecoversFromPanic(t *testing.T) {
	b := &normalizedBinding{handler: func(any) bool { panic("boom") }}

	var got bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("invokeHandler must recover, but panic escaped: %v", r)
			}
		}()
		got = invokeHandler(b, diagnostics.NullSink)
	}()

	if got {
		t.Fatal("a panicking handler must not be treated as having consumed the event")
	}
}

func TestInvokeHandlerNilHandlerIsFalsy(t *testing.T) {
	b := &normalizedBinding{handler: nil}
	if invokeHandler(b, diagnostics.NullSink) {
		t.Fatal("a nil handler must never report consumed")
	}
}
