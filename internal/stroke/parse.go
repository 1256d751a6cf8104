package stroke

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("stroke: empty key specification")
	ErrInvalidSpec = errors.New("stroke: invalid key specification")
	ErrMultiRune   = errors.New("stroke: key specification is more than one grapheme")
)

// Parse converts a human-authored key specification into its canonical
// Stroke. It accepts the two notations the rest of the ecosystem
// converges on, plus a bare key:
//
//   - modifier+key: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//   - a bare key or character: "a", "A", "Escape", "F5"
func Parse(spec string) (Stroke, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseBare(spec)
}

// ParseSequence splits a space-separated run of specs and parses each one,
// e.g. "Ctrl+X Ctrl+S" or "g g".
func ParseSequence(spec string) (Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}
	fields := strings.Fields(spec)
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		tok, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, tok)
	}
	return seq, nil
}

func parseVimStyle(inner string) (Stroke, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return "", ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	var mods []string
	keyPart := parts[len(parts)-1]

	for _, p := range parts[:len(parts)-1] {
		p = foldRune.String(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = append(mods, "ctrl")
		case "a":
			mods = append(mods, "alt")
		case "s":
			mods = append(mods, "shift")
		case "m", "d":
			mods = append(mods, "meta")
		default:
			return "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return assemble(mods, keyPart)
}

func parseModifierStyle(spec string) (Stroke, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return "", ErrInvalidSpec
	}

	var mods []string
	for _, p := range parts[:len(parts)-1] {
		p = foldRune.String(strings.TrimSpace(p))
		switch p {
		case "ctrl", "control", "c":
			mods = append(mods, "ctrl")
		case "alt", "option", "a":
			mods = append(mods, "alt")
		case "shift", "s":
			mods = append(mods, "shift")
		case "meta", "cmd", "command", "super", "win", "d":
			mods = append(mods, "meta")
		default:
			return "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return assemble(mods, strings.TrimSpace(parts[len(parts)-1]))
}

func parseBare(spec string) (Stroke, error) {
	if name, ok := namedKeyCanonical(foldRune.String(spec)); ok {
		return name, nil
	}
	return literalKey(spec)
}

// assemble builds the canonical "mod+mod+key" string from an ordered
// modifier list (already deduplicated by caller intent) and a raw key
// token, resolving Vim aliases and named keys along the way.
func assemble(mods []string, keyPart string) (Stroke, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return "", ErrInvalidSpec
	}

	folded := foldRune.String(keyPart)

	var key string
	if name, ok := namedKeyCanonical(folded); ok {
		key = name
	} else {
		literal, err := literalKey(keyPart)
		if err != nil {
			return "", err
		}
		key = literal
	}

	order := []string{"ctrl", "alt", "meta", "shift"}
	present := make(map[string]bool, len(mods))
	for _, m := range mods {
		present[m] = true
	}

	if present["ctrl"] && len([]rune(key)) == 1 {
		// Terminals deliver Ctrl+letter as a control code with the letter
		// already lowercase and no independent Shift bit; "Ctrl+S" is the
		// same stroke as "Ctrl+s". Shift is kept explicit here rather than
		// folded into case, since ctrl has already erased the case signal.
		key = strings.ToLower(key)
	} else if present["shift"] && len([]rune(key)) == 1 {
		// Without Ctrl, a host reports a shifted letter as the uppercase
		// rune with no Shift bit, so "Shift+s" and "S" canonicalize alike.
		key = strings.ToUpper(key)
		delete(present, "shift")
	}

	var b strings.Builder
	for _, m := range order {
		if present[m] {
			b.WriteString(m)
			b.WriteString("+")
		}
	}
	b.WriteString(key)
	return b.String(), nil
}

// literalKey validates that spec is exactly one grapheme cluster and
// returns it unchanged; letter case is preserved because it is meaningful
// ('S' and 's' are different keys).
func literalKey(spec string) (Stroke, error) {
	if uniseg.GraphemeClusterCount(spec) != 1 {
		return "", fmt.Errorf("%w: %q", ErrMultiRune, spec)
	}
	return spec, nil
}

var vimAliases = map[string]string{
	"cr":     "enter",
	"return": "enter",
	"esc":    "escape",
	"bs":     "backspace",
	"del":    "delete",
	"ins":    "insert",
	"lt":     "<",
	"gt":     ">",
	"bar":    "|",
	"bslash": "\\",
	"pgup":   "pageup",
	"pgdn":   "pagedown",
}

var namedKeys = map[string]bool{
	"escape": true, "enter": true, "tab": true, "backspace": true,
	"delete": true, "insert": true, "home": true, "end": true,
	"pageup": true, "pagedown": true, "up": true, "down": true,
	"left": true, "right": true, "space": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

func namedKeyCanonical(lower string) (string, bool) {
	if alias, ok := vimAliases[lower]; ok {
		return alias, true
	}
	if namedKeys[lower] {
		return lower, true
	}
	return "", false
}
