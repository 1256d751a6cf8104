package tcellhost

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/diagnostics"
	"github.com/dshills/keybind/internal/dispatch"
	"github.com/dshills/keybind/internal/document"
)

// Host delivers key-press events from a tcell terminal screen to a
// dispatch.Engine. It owns the screen's lifecycle (Init/Fini) and the
// blocking event loop; the engine never talks to tcell directly.
type Host struct {
	screen tcell.Screen
	engine *dispatch.Engine
	bus    *document.Bus
	sink   diagnostics.Sink

	mu    sync.Mutex
	focus document.Node

	quit chan struct{}
}

// New creates and initializes a tcell screen, wiring engine as the
// destination for every key event and bus as the channel the engine
// replays suppressed events through. focus is the node new key events are
// targeted at; change it with SetFocus as the application's focused
// element changes.
func New(engine *dispatch.Engine, bus *document.Bus, focus document.Node, sink diagnostics.Sink) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newWithScreen(screen, engine, bus, focus, sink)
}

// newWithScreen builds a Host around an already-constructed tcell.Screen,
// letting tests substitute tcell.NewSimulationScreen for the real terminal.
func newWithScreen(screen tcell.Screen, engine *dispatch.Engine, bus *document.Bus, focus document.Node, sink diagnostics.Sink) (*Host, error) {
	if sink == nil {
		sink = diagnostics.NullSink
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnablePaste()

	return &Host{
		screen: screen,
		engine: engine,
		bus:    bus,
		sink:   sink,
		focus:  focus,
		quit:   make(chan struct{}),
	}, nil
}

// SetFocus changes the node subsequent key events target.
func (h *Host) SetFocus(n document.Node) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focus = n
}

// Run blocks, polling the terminal for events until Close is called. Each
// key event is handed to the engine first; if the engine leaves it
// untouched (no binding matched, nothing suppressed), it is forwarded to
// the document bus's ordinary listeners.
func (h *Host) Run() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			h.handleKey(e)
		case *tcell.EventResize:
			h.screen.Sync()
			h.render()
		}

		select {
		case <-h.quit:
			return
		default:
		}
	}
}

func (h *Host) handleKey(e *tcell.EventKey) {
	h.mu.Lock()
	focus := h.focus
	h.mu.Unlock()

	key, r := convertKey(e)
	mod := convertMod(e.Modifiers())
	kev := document.NewKeyPressEvent(focus, key, r, mod)

	h.engine.Process(kev)

	if !kev.DefaultPrevented() && !kev.PropagationStopped() && h.bus != nil {
		h.bus.Dispatch(kev)
	}

	h.render()
}

// render redraws the pending-sequence status line and flushes the screen.
func (h *Host) render() {
	pending, _ := h.engine.Pending()
	drawStatusLine(h.screen, pending)
	h.screen.Show()
}

// Close stops Run and tears down the terminal screen. Fini unblocks any
// in-progress PollEvent, which then returns nil and lets Run return.
func (h *Host) Close() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
	h.screen.Fini()
}
