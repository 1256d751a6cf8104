package stroke

import (
	"testing"

	"github.com/dshills/keybind/internal/document"
)

func TestCanonicalizeMatchesParse(t *testing.T) {
	tests := []struct {
		name string
		e    document.Event
		spec string
	}{
		{"plain letter", document.NewKeyPressEvent(nil, document.KeyRune, 's', document.ModNone), "s"},
		{"shifted letter", document.NewKeyPressEvent(nil, document.KeyRune, 'S', document.ModNone), "S"},
		{"ctrl letter", document.NewKeyPressEvent(nil, document.KeyRune, 's', document.ModCtrl), "Ctrl+S"},
		{"alt function key", document.NewKeyPressEvent(nil, document.KeyF4, 0, document.ModAlt), "Alt+F4"},
		{"escape", document.NewKeyPressEvent(nil, document.KeyEscape, 0, document.ModNone), "Escape"},
		{"ctrl+shift letter", document.NewKeyPressEvent(nil, document.KeyRune, 'p', document.ModCtrl.With(document.ModShift)), "Ctrl+Shift+P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.e)
			want, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != want {
				t.Errorf("Canonicalize() = %q, Parse(%q) = %q", got, tt.spec, want)
			}
		})
	}
}

func TestCanonicalizeModifierOrder(t *testing.T) {
	e := document.NewKeyPressEvent(nil, document.KeyRune, 'q', document.ModMeta.With(document.ModAlt).With(document.ModCtrl))
	got := Canonicalize(e)
	want := "ctrl+alt+meta+q"
	if got != want {
		t.Errorf("Canonicalize() = %q, want %q", got, want)
	}
}
