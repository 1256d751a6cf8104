package selector

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySelector   = errors.New("selector: empty selector")
	ErrInvalidSelector = errors.New("selector: invalid syntax")
)

// Parse compiles a selector string like "pane.focused #editor.modified" into
// a Selector.
func Parse(raw string) (*Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptySelector
	}

	tokens := strings.Fields(trimmed)
	parts := make([]simpleSelector, 0, len(tokens))
	for _, tok := range tokens {
		part, err := parseSimple(tok)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return &Selector{raw: trimmed, parts: parts}, nil
}

// IsValid reports whether raw parses without error.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// parseSimple scans one compound token such as "div#main.active.modified"
// or "*" into its tag/id/class components.
func parseSimple(tok string) (simpleSelector, error) {
	var ss simpleSelector

	i := 0
	n := len(tok)
	var start int

	// A leading '*' is the universal tag: matches any node, and carries no
	// tag constraint of its own.
	if i < n && tok[i] == '*' {
		i++
	} else {
		start = i
		for i < n && isIdentChar(tok[i]) {
			i++
		}
		if i > start {
			ss.tag = tok[start:i]
		}
	}
	if i < n && tok[i] != '#' && tok[i] != '.' {
		return ss, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSelector, string(tok[i]), tok)
	}

	for i < n {
		switch tok[i] {
		case '#':
			i++
			start = i
			for i < n && isIdentChar(tok[i]) {
				i++
			}
			if i == start {
				return ss, fmt.Errorf("%w: empty id in %q", ErrInvalidSelector, tok)
			}
			if ss.id != "" {
				return ss, fmt.Errorf("%w: more than one id in %q", ErrInvalidSelector, tok)
			}
			ss.id = tok[start:i]
		case '.':
			i++
			start = i
			for i < n && isIdentChar(tok[i]) {
				i++
			}
			if i == start {
				return ss, fmt.Errorf("%w: empty class in %q", ErrInvalidSelector, tok)
			}
			ss.classes = append(ss.classes, tok[start:i])
		default:
			return ss, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSelector, string(tok[i]), tok)
		}
	}

	return ss, nil
}

func isIdentChar(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
