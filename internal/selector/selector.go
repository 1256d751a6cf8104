package selector

import "github.com/dshills/keybind/internal/document"

// Selector is a parsed selector: a sequence of simple selectors joined by
// the descendant combinator. part[len-1] must match the node being tested;
// each earlier part must match some ancestor further up the chain, in
// order, mirroring how a browser matches "a b c" against an element and
// its ancestors.
type Selector struct {
	raw   string
	parts []simpleSelector
}

// simpleSelector is one compound step: an optional tag, optional id, and
// any number of classes, all of which must match a single node.
type simpleSelector struct {
	tag     string // "" means any tag
	id      string // "" means no id constraint
	classes []string
}

func (s simpleSelector) matches(n document.Node) bool {
	if s.tag != "" && n.Tag() != s.tag {
		return false
	}
	if s.id != "" && n.ID() != s.id {
		return false
	}
	for _, c := range s.classes {
		if !document.HasClass(n, c) {
			return false
		}
	}
	return true
}

func (s simpleSelector) specificity() int {
	score := 0
	if s.id != "" {
		score += 100
	}
	score += 10 * len(s.classes)
	if s.tag != "" {
		score++
	}
	return score
}

// Specificity returns the selector's CSS-style specificity score, summed
// across every simple selector in the chain. Higher wins a tie against a
// selector matching at the same ancestor distance.
func (s *Selector) Specificity() int {
	total := 0
	for _, p := range s.parts {
		total += p.specificity()
	}
	return total
}

// String returns the selector's original source text.
func (s *Selector) String() string {
	return s.raw
}

// Matches reports whether path, which must be document.Path(n) for the
// node n under test (n first, document root last), satisfies the selector.
func (s *Selector) Matches(path []document.Node) bool {
	if len(path) == 0 || len(s.parts) == 0 {
		return false
	}

	last := len(s.parts) - 1
	if !s.parts[last].matches(path[0]) {
		return false
	}

	// Walk remaining ancestors looking for each earlier part, in order,
	// allowing intervening nodes to be skipped (descendant, not child,
	// combinator).
	partIdx := last - 1
	for i := 1; i < len(path) && partIdx >= 0; i++ {
		if s.parts[partIdx].matches(path[i]) {
			partIdx--
		}
	}
	return partIdx < 0
}
