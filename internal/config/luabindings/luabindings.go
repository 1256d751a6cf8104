package luabindings

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/config/configerr"
	"github.com/dshills/keybind/internal/dispatch"
)

// ActionTable resolves a bind() call's action name to the handler that
// should run when the binding fires.
type ActionTable map[string]func(args any) bool

// bindCall is one recorded bind(...) invocation, captured by the Go
// function installed as the script's "bind" global.
type bindCall struct {
	sequence    string
	selector    string
	action      string
	description string
	category    string
}

// LoadFile runs the Lua script at path in a sandboxed state and returns
// the bindings it declared via bind(sequence, selector, action). Only
// the base, table, string, and math libraries are available to the
// script; it cannot read files, spawn processes, or load other modules.
//
// A bind() call naming an unknown action, or passing an empty sequence,
// is collected as a validation error rather than aborting the load;
// every other call in the script still registers.
func LoadFile(path string, actions ActionTable) ([]dispatch.Binding, error) {
	errs := &configerr.ValidationErrors{}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	var calls []bindCall
	L.SetGlobal("bind", L.NewFunction(func(ls *lua.LState) int {
		call := bindCall{
			sequence: ls.CheckString(1),
			selector: ls.CheckString(2),
			action:   ls.CheckString(3),
		}
		if ls.GetTop() >= 4 {
			call.description = ls.OptString(4, "")
		}
		if ls.GetTop() >= 5 {
			call.category = ls.OptString(5, "")
		}
		calls = append(calls, call)
		return 0
	}))

	if err := doFileWithRecovery(L, path); err != nil {
		errs.Add(path, err.Error())
		return nil, errs.AsError()
	}

	var bindings []dispatch.Binding
	for i, c := range calls {
		loc := fmt.Sprintf("%s: bind() call #%d", path, i+1)

		seq := strings.Fields(c.sequence)
		if len(seq) == 0 {
			errs.Add(loc, "sequence is empty")
			continue
		}

		handler, ok := actions[c.action]
		if !ok {
			errs.Add(loc, fmt.Sprintf("unknown action %q", c.action))
			continue
		}

		bindings = append(bindings, dispatch.Binding{
			Sequence:    seq,
			Selector:    c.selector,
			Handler:     handler,
			Description: c.description,
			Category:    c.category,
		})
	}

	return bindings, errs.AsError()
}

// doFileWithRecovery runs path and turns any Lua panic into a plain
// error, so a broken binding script never brings down its caller.
func doFileWithRecovery(L *lua.LState, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return L.DoFile(path)
}

// openSafeLibraries opens only the libraries a binding script needs to
// compute sequences and build tables. Deliberately excluded: io (file
// access), os (process and environment access), debug (sandbox
// escapes), and package (arbitrary module loading).
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}
