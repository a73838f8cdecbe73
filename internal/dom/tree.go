package dom

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/msartiano/finder/internal/selector"
	"golang.org/x/net/html"
)

// ErrScopeNotFound is returned when a root selector matches nothing.
var ErrScopeNotFound = errors.New("root selector matched no element")

// Tree answers selector queries against the descendants of a scope node,
// with querySelectorAll semantics: matching sees the full ancestry, results
// are limited to the scope's descendants.
type Tree struct {
	scope *html.Node

	mu       sync.Mutex
	compiled map[string]cascadia.Selector
}

var _ selector.Tree = (*Tree)(nil)

// NewTree creates a Tree scoped to the first node of sel. Pass a document's
// Selection to query the whole document.
func NewTree(sel *goquery.Selection) *Tree {
	var scope *html.Node
	if sel != nil && len(sel.Nodes) > 0 {
		scope = sel.Nodes[0]
	}
	return &Tree{
		scope:    scope,
		compiled: make(map[string]cascadia.Selector),
	}
}

// Count returns the number of scope descendants matching query.
func (t *Tree) Count(query string) (int, error) {
	sel, err := t.compile(query)
	if err != nil {
		return 0, err
	}
	if t.scope == nil {
		return 0, nil
	}
	return len(cascadia.QueryAll(t.scope, sel)), nil
}

// First returns the first scope descendant matching query, or nil.
func (t *Tree) First(query string) (selector.Node, error) {
	sel, err := t.compile(query)
	if err != nil {
		return nil, err
	}
	if t.scope == nil {
		return nil, nil
	}

	n := cascadia.Query(t.scope, sel)
	if n == nil {
		return nil, nil
	}
	return Node{n: n}, nil
}

func (t *Tree) compile(query string) (cascadia.Selector, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sel, ok := t.compiled[query]; ok {
		return sel, nil
	}

	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", query, err)
	}
	t.compiled[query] = sel
	return sel, nil
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Scope returns the selection a Tree should be scoped to: the whole document
// when rootQuery is empty, else the first element matching rootQuery.
func Scope(doc *goquery.Document, rootQuery string) (*goquery.Selection, error) {
	if rootQuery == "" {
		return doc.Selection, nil
	}

	matches, err := Select(doc.Selection, rootQuery)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrScopeNotFound, rootQuery)
	}
	return doc.FindNodes(matches[0].HTML()), nil
}

// Select returns the descendants of sel matching query. Unlike
// goquery.Selection.Find, an invalid selector is reported as an error.
func Select(sel *goquery.Selection, query string) ([]Node, error) {
	matcher, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", query, err)
	}

	found := sel.FindMatcher(matcher)
	nodes := make([]Node, 0, found.Length())
	for _, n := range found.Nodes {
		nodes = append(nodes, Node{n: n})
	}
	return nodes, nil
}
