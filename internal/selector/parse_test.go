package selector

import "testing"

func TestParseSimpleSelectors(t *testing.T) {
	tests := []struct {
		raw  string
		want simpleSelector
	}{
		{"div", simpleSelector{tag: "div"}},
		{"*", simpleSelector{}},
		{"#main", simpleSelector{id: "main"}},
		{".active", simpleSelector{classes: []string{"active"}}},
		{"pane#main.active.modified", simpleSelector{tag: "pane", id: "main", classes: []string{"active", "modified"}}},
	}

	for _, tt := range tests {
		sel, err := Parse(tt.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tt.raw, err)
		}
		if len(sel.parts) != 1 {
			t.Fatalf("Parse(%q) produced %d parts, want 1", tt.raw, len(sel.parts))
		}
		got := sel.parts[0]
		if got.tag != tt.want.tag || got.id != tt.want.id || !equalClasses(got.classes, tt.want.classes) {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func equalClasses(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseDescendantCombinator(t *testing.T) {
	sel, err := Parse("pane.focused #editor")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(sel.parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(sel.parts))
	}
	if sel.parts[0].tag != "pane" || sel.parts[0].classes[0] != "focused" {
		t.Errorf("parts[0] = %+v", sel.parts[0])
	}
	if sel.parts[1].id != "editor" {
		t.Errorf("parts[1] = %+v", sel.parts[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{"", "   ", "div#", "div.", "div##a", "div>span", "div.a.b#"}
	for _, raw := range tests {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("div.active") {
		t.Error("IsValid(\"div.active\") = false, want true")
	}
	if IsValid("div##") {
		t.Error("IsValid(\"div##\") = true, want false")
	}
}
