// Package dom adapts parsed HTML documents (goquery over golang.org/x/net/html)
// to the selector package: element navigation on one side, a cascadia-backed
// query oracle on the other.
package dom

import (
	"strings"

	"github.com/msartiano/finder/internal/selector"
	"golang.org/x/net/html"
)

// Node wraps an *html.Node. It is a comparable value: two Nodes are equal
// exactly when they wrap the same *html.Node.
type Node struct {
	n *html.Node
}

var _ selector.Node = Node{}

// Wrap returns the selector view of n.
func Wrap(n *html.Node) Node {
	return Node{n: n}
}

// HTML returns the wrapped node.
func (n Node) HTML() *html.Node {
	return n.n
}

// IsElement reports whether the node is an element.
func (n Node) IsElement() bool {
	return n.n != nil && n.n.Type == html.ElementNode
}

// Parent returns the parent element. The document node is not an element,
// so the top-level <html> element has no parent.
func (n Node) Parent() selector.Node {
	p := parentElement(n.n)
	if p == nil {
		return nil
	}
	return Node{n: p}
}

// Position returns the 1-based index among the element children of the
// parent element, matching :nth-child semantics.
func (n Node) Position() (int, bool) {
	p := parentElement(n.n)
	if p == nil {
		return 0, false
	}

	index := 0
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			index++
		}
		if c == n.n {
			return index, true
		}
	}

	return 0, false
}

// TagName returns the tag name. Foreign elements whose names keep upper case
// letters (SVG's clipPath, foreignObject) cannot be matched by a lowercase
// type selector, so they report "" and the search never uses their tag.
func (n Node) TagName() string {
	if !n.IsElement() {
		return ""
	}
	if strings.ToLower(n.n.Data) != n.n.Data {
		return ""
	}
	return n.n.Data
}

// ID returns the id attribute.
func (n Node) ID() string {
	return attr(n.n, "id")
}

// ClassNames returns the whitespace-separated class list.
func (n Node) ClassNames() []string {
	return strings.Fields(attr(n.n, "class"))
}

// Attributes returns the element's attributes in document order. Keys that
// keep upper case letters (SVG's viewBox) are left out: attribute selectors
// lowercase their key, so they could never match.
func (n Node) Attributes() []selector.Attribute {
	if !n.IsElement() || len(n.n.Attr) == 0 {
		return nil
	}

	attrs := make([]selector.Attribute, 0, len(n.n.Attr))
	for _, a := range n.n.Attr {
		if a.Namespace != "" || strings.ToLower(a.Key) != a.Key {
			continue
		}
		attrs = append(attrs, selector.Attribute{Name: a.Key, Value: a.Val})
	}
	return attrs
}

func parentElement(n *html.Node) *html.Node {
	if n == nil || n.Parent == nil || n.Parent.Type != html.ElementNode {
		return nil
	}
	return n.Parent
}

// attr returns the value of an attribute on a node.
func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
