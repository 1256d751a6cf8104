// Package selector implements a small CSS-inspired selector language used
// to scope key bindings to regions of a document tree: a tag name, an id
// (#id), zero or more classes (.class), and the descendant combinator
// (whitespace) for matching an ancestor chain rather than a single node.
package selector
