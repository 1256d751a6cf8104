package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dshills/keybind/internal/dispatch"
	"github.com/dshills/keybind/internal/selector"
	"github.com/dshills/keybind/internal/stroke"
)

func newTestEngine() *dispatch.Engine {
	return dispatch.New(stroke.Canonicalizer{}, selector.Engine{}, nil,
		dispatch.WithAmbiguityWindow(time.Hour),
	)
}

// countingLoader returns a Loader that increments loadCount on every
// attempt and fails whenever the file's content starts with "!".
func countingLoader(loadCount *int64) Loader {
	return func(path string) ([]dispatch.Binding, error) {
		atomic.AddInt64(loadCount, 1)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 || data[0] == '!' {
			return nil, os.ErrInvalid
		}
		return []dispatch.Binding{
			{
				Sequence: []string{"a"},
				Selector: "*",
				Handler:  func(any) bool { return true },
			},
		}, nil
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewPerformsInitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.txt")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine()
	var loadCount int64
	w, err := New(e, path, countingLoader(&loadCount), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if got := len(e.AllBindings()); got != 1 {
		t.Fatalf("AllBindings length = %d, want 1 after initial load", got)
	}
	if atomic.LoadInt64(&loadCount) != 1 {
		t.Fatalf("loadCount = %d, want 1", loadCount)
	}
}

func TestNewFailsWhenInitialLoadFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.txt")
	if err := os.WriteFile(path, []byte("!broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine()
	var loadCount int64
	_, err := New(e, path, countingLoader(&loadCount), nil)
	if err == nil {
		t.Fatal("New: want error when the initial load fails")
	}
}

func TestReloadRerunsLoaderOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.txt")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine()
	var loadCount int64
	w, err := New(e, path, countingLoader(&loadCount), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	go w.Run()

	if err := os.WriteFile(path, []byte("updated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitFor(t, func() bool { return atomic.LoadInt64(&loadCount) >= 2 })

	if got := len(e.AllBindings()); got != 1 {
		t.Fatalf("AllBindings length = %d, want 1 after reload", got)
	}
}

func TestBadEditLeavesPreviousBindingsRegistered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.txt")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine()
	var loadCount int64
	w, err := New(e, path, countingLoader(&loadCount), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	go w.Run()

	if err := os.WriteFile(path, []byte("!broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitFor(t, func() bool { return atomic.LoadInt64(&loadCount) >= 2 })

	if got := len(e.AllBindings()); got != 1 {
		t.Fatalf("AllBindings length = %d, want 1: a failed reload must not clear the previous bindings", got)
	}
}

func TestCloseStopsWatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.txt")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEngine()
	var loadCount int64
	w, err := New(e, path, countingLoader(&loadCount), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	go w.Run()

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
