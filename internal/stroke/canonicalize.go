package stroke

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/dshills/keybind/internal/document"
)

var foldRune = cases.Fold()

// Canonicalize converts a live host event into its canonical Stroke. The
// result is stable across hosts: "Ctrl+S", a terminal's SIGINT-adjacent
// byte sequence for Ctrl-S, and a GUI's KeyS-with-ctrlKey-true all produce
// "ctrl+s".
func Canonicalize(e document.Event) Stroke {
	var b strings.Builder

	mods := e.Modifiers()
	if mods.HasCtrl() {
		b.WriteString("ctrl+")
	}
	if mods.HasAlt() {
		b.WriteString("alt+")
	}
	if mods.HasMeta() {
		b.WriteString("meta+")
	}
	// Shift is folded into the key itself for printable runes (Shift+s and
	// S canonicalize the same way), but kept explicit for named keys and
	// for runes held with Ctrl, matching what Parse produces for
	// "Ctrl+Shift+P".
	if mods.HasShift() && (e.Key() != document.KeyRune || mods.HasCtrl()) {
		b.WriteString("shift+")
	}

	if e.Key() == document.KeyRune {
		// Without Ctrl the rune already encodes shift state for letters
		// ('S' vs 's'), so it is kept verbatim. With Ctrl it is lowercased,
		// as Parse lowercases the key of any Ctrl stroke.
		r := e.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	} else {
		b.WriteString(canonicalKeyName(e.Key()))
	}

	return b.String()
}

func canonicalKeyName(k document.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return foldRune.String(k.String())
}

var keyNames = map[document.Key]string{
	document.KeyEscape:    "escape",
	document.KeyEnter:     "enter",
	document.KeyTab:       "tab",
	document.KeyBackspace: "backspace",
	document.KeyDelete:    "delete",
	document.KeyInsert:    "insert",
	document.KeyHome:      "home",
	document.KeyEnd:       "end",
	document.KeyPageUp:    "pageup",
	document.KeyPageDown:  "pagedown",
	document.KeyUp:        "up",
	document.KeyDown:      "down",
	document.KeyLeft:      "left",
	document.KeyRight:     "right",
	document.KeySpace:     "space",
	document.KeyF1:        "f1",
	document.KeyF2:        "f2",
	document.KeyF3:        "f3",
	document.KeyF4:        "f4",
	document.KeyF5:        "f5",
	document.KeyF6:        "f6",
	document.KeyF7:        "f7",
	document.KeyF8:        "f8",
	document.KeyF9:        "f9",
	document.KeyF10:       "f10",
	document.KeyF11:       "f11",
	document.KeyF12:       "f12",
}
