package document

// Node is a single element in the host's document tree. The dispatcher
// walks Node.Parent() from an event's target toward its current-target,
// testing each visited node against candidate selectors.
//
// The selector engine (internal/selector) is the only other package that
// inspects a Node's shape; the dispatcher itself only ever calls Parent.
type Node interface {
	// ID returns the node's unique identifier, or "" if unset.
	ID() string

	// Tag returns the node's element type (e.g. "div", "pane", "button"),
	// or "" if the host document has no notion of element types.
	Tag() string

	// Classes returns the node's class list, in authoring order.
	Classes() []string

	// Parent returns the node's parent, or nil for the document root.
	Parent() Node
}

// HasClass reports whether n carries the given class.
func HasClass(n Node, class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// Path returns the ancestor chain starting at n and ending at the root,
// inclusive of both ends. It is the order the scoped dispatcher walks in.
func Path(n Node) []Node {
	var path []Node
	for cur := n; cur != nil; cur = cur.Parent() {
		path = append(path, cur)
	}
	return path
}
