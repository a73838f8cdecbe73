package selector

// Attribute is a name/value pair read from an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is the read-only view of one node of the queried tree.
//
// Implementations must be comparable: a query result is matched against the
// target with ==, so two Node values must be equal exactly when they refer
// to the same underlying node.
type Node interface {
	// IsElement reports whether the node is an element.
	IsElement() bool
	// Parent returns the parent element, or nil when there is none.
	Parent() Node
	// Position returns the 1-based index of the node among the element
	// children of its parent. ok is false when the node has no parent element.
	Position() (index int, ok bool)
	// TagName returns the lowercase tag name.
	TagName() string
	// ID returns the id attribute, or "" when absent.
	ID() string
	// ClassNames returns the class list in document order.
	ClassNames() []string
	// Attributes returns every attribute in document order.
	Attributes() []Attribute
}

// Tree answers selector queries against the document the nodes belong to.
type Tree interface {
	// Count returns the number of elements matching query.
	Count(query string) (int, error)
	// First returns the first element matching query in document order,
	// or nil when nothing matches.
	First(query string) (Node, error)
}
