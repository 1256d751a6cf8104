package watch

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keybind/internal/diagnostics"
	"github.com/dshills/keybind/internal/dispatch"
)

// Loader parses path into bindings. internal/config/jsonbindings.Load and
// internal/config/luabindings.LoadFile, each partially applied over their
// action table, both satisfy this signature.
type Loader func(path string) ([]dispatch.Binding, error)

// Watcher reloads a binding config file into a dispatch.Engine whenever
// fsnotify reports it changed.
type Watcher struct {
	engine *dispatch.Engine
	path   string
	load   Loader
	sink   diagnostics.Sink

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	current *dispatch.Handle

	done      chan struct{}
	closedWg  sync.WaitGroup
	closeOnce sync.Once
}

// New constructs a Watcher and performs the initial load of path,
// registering its bindings with engine before watching begins. sink may
// be nil, in which case diagnostics are discarded.
func New(engine *dispatch.Engine, path string, load Loader, sink diagnostics.Sink) (*Watcher, error) {
	if sink == nil {
		sink = diagnostics.NullSink
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		engine: engine,
		path:   path,
		load:   load,
		sink:   sink,
		fsw:    fsw,
		done:   make(chan struct{}),
	}

	if err := w.reload(); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run watches path for changes until Close is called. It is meant to run
// in its own goroutine.
func (w *Watcher) Run() {
	w.closedWg.Add(1)
	defer w.closedWg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := w.reload(); err != nil {
				w.sink.Log(diagnostics.LevelWarn, "binding reload failed, keeping previous bindings", map[string]any{
					"path":  w.path,
					"error": err.Error(),
				})
			} else {
				w.sink.Log(diagnostics.LevelInfo, "bindings reloaded", map[string]any{
					"path": w.path,
				})
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sink.Log(diagnostics.LevelWarn, "watcher error", map[string]any{
				"path":  w.path,
				"error": err.Error(),
			})
		}
	}
}

// reload parses the watched file and, only on success, swaps it in for
// the previously registered batch. A parse failure returns its error
// with the old handle left registered and untouched: the load attempt
// happens entirely before any unregistration, so a bad edit never takes
// the running binding set offline.
func (w *Watcher) reload() error {
	bindings, err := w.load(w.path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current != nil {
		w.current.Revoke()
	}

	handle, err := w.engine.Register(bindings)
	if err != nil {
		return err
	}
	w.current = handle
	return nil
}

// Close stops watching and releases the underlying fsnotify watcher. It
// does not revoke the currently registered bindings; the engine keeps
// whatever was last successfully loaded.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	err := w.fsw.Close()
	w.closedWg.Wait()
	return err
}
