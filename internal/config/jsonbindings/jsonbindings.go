package jsonbindings

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/keybind/internal/config/configerr"
	"github.com/dshills/keybind/internal/dispatch"
)

// ActionTable resolves a binding record's "action" string to the handler
// that should run when it fires.
type ActionTable map[string]func(args any) bool

// Load reads path as a JSON array of binding records and resolves each
// against actions. Records naming an unknown action, or missing a
// sequence, are skipped and collected into the returned error rather than
// failing the whole load; every other record in the file still loads.
func Load(path string, actions ActionTable) ([]dispatch.Binding, error) {
	errs := &configerr.ValidationErrors{}

	data, err := os.ReadFile(path)
	if err != nil {
		errs.Add(path, err.Error())
		return nil, errs.AsError()
	}
	if !gjson.ValidBytes(data) {
		errs.Add(path, "not valid JSON")
		return nil, errs.AsError()
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		errs.Add(path, "expected a top-level JSON array of binding records")
		return nil, errs.AsError()
	}

	var bindings []dispatch.Binding
	root.ForEach(func(key, record gjson.Result) bool {
		loc := fmt.Sprintf("%s[%s]", path, key.String())

		seq := strings.Fields(record.Get("sequence").String())
		if len(seq) == 0 {
			errs.Add(loc+".sequence", "required field is missing")
			return true
		}

		action := record.Get("action").String()
		handler, ok := actions[action]
		if !ok {
			errs.Add(loc+".action", fmt.Sprintf("unknown action %q", action))
			return true
		}

		bindings = append(bindings, dispatch.Binding{
			Sequence:    seq,
			Selector:    record.Get("selector").String(),
			Handler:     handler,
			Description: record.Get("description").String(),
			Category:    record.Get("category").String(),
		})
		return true
	})

	return bindings, errs.AsError()
}

// Record is one human-authored binding as saved back to disk: an action
// name rather than a resolved handler, since the file outlives any one
// process's action table.
type Record struct {
	Sequence    string
	Selector    string
	Action      string
	Description string
	Category    string
}

// Save writes records to path as a pretty-printed JSON array, so a demo
// application can persist a binding the user just recorded interactively.
func Save(path string, records []Record) error {
	doc := "[]"
	var err error
	for i, r := range records {
		p := fmt.Sprintf("%d", i)
		if doc, err = sjson.Set(doc, p+".sequence", r.Sequence); err != nil {
			return err
		}
		if doc, err = sjson.Set(doc, p+".selector", r.Selector); err != nil {
			return err
		}
		if doc, err = sjson.Set(doc, p+".action", r.Action); err != nil {
			return err
		}
		if r.Description != "" {
			if doc, err = sjson.Set(doc, p+".description", r.Description); err != nil {
				return err
			}
		}
		if r.Category != "" {
			if doc, err = sjson.Set(doc, p+".category", r.Category); err != nil {
				return err
			}
		}
	}

	return os.WriteFile(path, pretty.Pretty([]byte(doc)), 0o644)
}
