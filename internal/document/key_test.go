package document

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(9999), "Key(9999)"},
	}

	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestKeyIsFunctionKey(t *testing.T) {
	tests := []struct {
		k    Key
		want bool
	}{
		{KeyF1, true},
		{KeyF12, true},
		{KeyF7, true},
		{KeyEscape, false},
		{KeyRune, false},
	}

	for _, tt := range tests {
		if got := tt.k.IsFunctionKey(); got != tt.want {
			t.Errorf("Key(%v).IsFunctionKey() = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestKeyIsArrowKey(t *testing.T) {
	tests := []struct {
		k    Key
		want bool
	}{
		{KeyUp, true},
		{KeyDown, true},
		{KeyLeft, true},
		{KeyRight, true},
		{KeyEnter, false},
	}

	for _, tt := range tests {
		if got := tt.k.IsArrowKey(); got != tt.want {
			t.Errorf("Key(%v).IsArrowKey() = %v, want %v", tt.k, got, tt.want)
		}
	}
}
