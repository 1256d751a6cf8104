package jsonbindings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keybind/internal/config/configerr"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadResolvesActions(t *testing.T) {
	path := writeTemp(t, "bindings.json", `[
		{"sequence": "ctrl+s", "selector": "editor", "action": "save"},
		{"sequence": "g g", "selector": "*", "action": "goto-top", "category": "navigation"}
	]`)

	var saveCalls, gotoCalls int
	actions := ActionTable{
		"save":     func(any) bool { saveCalls++; return true },
		"goto-top": func(any) bool { gotoCalls++; return true },
	}

	bindings, err := Load(path, actions)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("len(bindings) = %d, want 2", len(bindings))
	}

	if got := bindings[0].Sequence; len(got) != 1 || got[0] != "ctrl+s" {
		t.Errorf("bindings[0].Sequence = %v, want [ctrl+s]", got)
	}
	if bindings[0].Selector != "editor" {
		t.Errorf("bindings[0].Selector = %q, want editor", bindings[0].Selector)
	}
	if bindings[1].Category != "navigation" {
		t.Errorf("bindings[1].Category = %q, want navigation", bindings[1].Category)
	}

	bindings[0].Handler(nil)
	bindings[1].Handler(nil)
	if saveCalls != 1 || gotoCalls != 1 {
		t.Errorf("saveCalls=%d gotoCalls=%d, want 1 and 1", saveCalls, gotoCalls)
	}
}

func TestLoadCollectsAllErrorsInsteadOfStoppingAtFirst(t *testing.T) {
	path := writeTemp(t, "bindings.json", `[
		{"sequence": "", "selector": "*", "action": "save"},
		{"sequence": "ctrl+q", "selector": "*", "action": "unknown-action"},
		{"sequence": "ctrl+s", "selector": "*", "action": "save"}
	]`)

	actions := ActionTable{"save": func(any) bool { return true }}

	bindings, err := Load(path, actions)
	if err == nil {
		t.Fatal("Load: want error, got nil")
	}
	if len(bindings) != 1 {
		t.Fatalf("len(bindings) = %d, want 1 (the one valid record)", len(bindings))
	}

	verrs, ok := err.(*configerr.ValidationErrors)
	if !ok {
		t.Fatalf("err is %T, want *configerr.ValidationErrors", err)
	}
	if len(verrs.Errors) != 2 {
		t.Errorf("collected %d errors, want 2 (both failures): %v", len(verrs.Errors), verrs)
	}
}

func TestLoadRejectsNonArrayTopLevel(t *testing.T) {
	path := writeTemp(t, "bindings.json", `{"sequence": "ctrl+s"}`)

	_, err := Load(path, ActionTable{})
	if err == nil {
		t.Fatal("Load: want error for non-array top level, got nil")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := writeTemp(t, "bindings.json", `not json at all`)

	_, err := Load(path, ActionTable{})
	if err == nil {
		t.Fatal("Load: want error for invalid JSON, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), ActionTable{})
	if err == nil {
		t.Fatal("Load: want error for missing file, got nil")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	records := []Record{
		{Sequence: "ctrl+s", Selector: "editor", Action: "save"},
		{Sequence: "g g", Selector: "*", Action: "goto-top", Description: "Jump to top", Category: "navigation"},
	}

	if err := Save(path, records); err != nil {
		t.Fatalf("Save: %v", err)
	}

	actions := ActionTable{
		"save":     func(any) bool { return true },
		"goto-top": func(any) bool { return true },
	}
	bindings, err := Load(path, actions)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("len(bindings) = %d, want 2", len(bindings))
	}
	if bindings[1].Description != "Jump to top" {
		t.Errorf("bindings[1].Description = %q, want %q", bindings[1].Description, "Jump to top")
	}
}
