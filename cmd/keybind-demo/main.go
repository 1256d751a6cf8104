// Package main is a small runnable demonstration of the dispatcher: a
// three-pane document tree (sidebar, editor, status bar), a handful of
// default key bindings, and optional hot-reloadable binding files.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dshills/keybind/internal/config/jsonbindings"
	"github.com/dshills/keybind/internal/config/luabindings"
	"github.com/dshills/keybind/internal/config/watch"
	"github.com/dshills/keybind/internal/diagnostics"
	"github.com/dshills/keybind/internal/dispatch"
	"github.com/dshills/keybind/internal/document"
	"github.com/dshills/keybind/internal/host/tcellhost"
	"github.com/dshills/keybind/internal/selector"
	"github.com/dshills/keybind/internal/stroke"
)

func main() {
	os.Exit(run())
}

type options struct {
	jsonBindings string
	luaBindings  string
	logLevel     string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.jsonBindings, "bindings.json", "", "Path to a JSON binding file to load and watch")
	flag.StringVar(&opts.luaBindings, "bindings.lua", "", "Path to a Lua binding script to load and watch")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybind-demo - interactive dispatcher demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybind-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run() int {
	opts := parseFlags()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		sink := diagnostics.NewJSONLogger(os.Stdout, diagnostics.ParseLevel(opts.logLevel))
		sink.Log(diagnostics.LevelInfo, "stdout is not a terminal, refusing to start the interactive host", nil)
		return 1
	}

	sink := diagnostics.NewLogger(diagnostics.LoggerConfig{
		Level:  diagnostics.ParseLevel(opts.logLevel),
		Output: os.Stderr,
		Prefix: "keybind-demo",
	})

	doc := buildDocument()
	bus := document.NewBus()

	engine := dispatch.New(stroke.Canonicalizer{}, selector.Engine{}, sink,
		dispatch.WithReplayer(bus),
	)

	actions := buildActions(sink)

	if _, err := engine.Register(defaultBindings(actions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to register default bindings: %v\n", err)
		return 1
	}

	watchers, err := startWatchers(engine, opts, actions, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		for _, w := range watchers {
			w.Close()
		}
	}()

	host, err := tcellhost.New(engine, bus, doc.editor, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer host.Close()

	host.Run()
	return 0
}

type demoDocument struct {
	root      *document.TreeNode
	sidebar   *document.TreeNode
	editor    *document.TreeNode
	statusBar *document.TreeNode
}

func buildDocument() demoDocument {
	root := document.NewTreeNode("pane", "", "focused")
	sidebar := document.NewTreeNode("sidebar", "")
	editor := document.NewTreeNode("editor", "main")
	statusBar := document.NewTreeNode("status", "")

	root.AppendChild(sidebar)
	root.AppendChild(editor)
	root.AppendChild(statusBar)

	return demoDocument{root: root, sidebar: sidebar, editor: editor, statusBar: statusBar}
}

func buildActions(sink diagnostics.Sink) jsonbindings.ActionTable {
	log := func(name string) func(any) bool {
		return func(any) bool {
			sink.Log(diagnostics.LevelInfo, "action fired", map[string]any{"action": name})
			return true
		}
	}
	return jsonbindings.ActionTable{
		"save":         log("save"),
		"quit":         log("quit"),
		"goto-top":     log("goto-top"),
		"toggle-panel": log("toggle-panel"),
	}
}

func defaultBindings(actions jsonbindings.ActionTable) []dispatch.Binding {
	return []dispatch.Binding{
		{Sequence: []string{"ctrl+s"}, Selector: "editor", Handler: actions["save"], Description: "Save the current buffer", Category: "file"},
		{Sequence: []string{"ctrl+q"}, Selector: "*", Handler: actions["quit"], Description: "Quit", Category: "file"},
		{Sequence: []string{"g", "g"}, Selector: "*", Handler: actions["goto-top"], Description: "Jump to the top", Category: "navigation"},
		{Sequence: []string{"ctrl+b"}, Selector: "*", Handler: actions["toggle-panel"], Description: "Toggle the sidebar", Category: "view"},
	}
}

// startWatchers wires a hot-reloading watch.Watcher for each binding file
// the user passed, returning all of them so main can close them on exit.
func startWatchers(engine *dispatch.Engine, opts options, actions jsonbindings.ActionTable, sink diagnostics.Sink) ([]*watch.Watcher, error) {
	var watchers []*watch.Watcher

	if opts.jsonBindings != "" {
		loader := func(path string) ([]dispatch.Binding, error) {
			return jsonbindings.Load(path, actions)
		}
		w, err := watch.New(engine, opts.jsonBindings, loader, sink)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", opts.jsonBindings, err)
		}
		go w.Run()
		watchers = append(watchers, w)
	}

	if opts.luaBindings != "" {
		luaActions := luabindings.ActionTable(actions)
		loader := func(path string) ([]dispatch.Binding, error) {
			return luabindings.LoadFile(path, luaActions)
		}
		w, err := watch.New(engine, opts.luaBindings, loader, sink)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", opts.luaBindings, err)
		}
		go w.Run()
		watchers = append(watchers, w)
	}

	return watchers, nil
}
