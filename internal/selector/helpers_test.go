package selector

// fakeNode is a hand-built element for tests that do not need a document.
type fakeNode struct {
	tag     string
	id      string
	classes []string
	attrs   []Attribute
	parent  *fakeNode
	index   int
}

func (n *fakeNode) IsElement() bool { return true }

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Position() (int, bool) {
	if n.parent == nil {
		return 0, false
	}
	return n.index, true
}

func (n *fakeNode) TagName() string         { return n.tag }
func (n *fakeNode) ID() string              { return n.id }
func (n *fakeNode) ClassNames() []string    { return n.classes }
func (n *fakeNode) Attributes() []Attribute { return n.attrs }

// scriptedTree answers 1 for the queries listed in unique and 2 otherwise,
// and records how often each query was counted.
type scriptedTree struct {
	target Node
	unique map[string]bool
	counts map[string]int
}

func newScriptedTree(target Node, unique ...string) *scriptedTree {
	t := &scriptedTree{
		target: target,
		unique: make(map[string]bool),
		counts: make(map[string]int),
	}
	for _, q := range unique {
		t.unique[q] = true
	}
	return t
}

func (t *scriptedTree) Count(query string) (int, error) {
	t.counts[query]++
	if t.unique[query] {
		return 1, nil
	}
	return 2, nil
}

func (t *scriptedTree) First(query string) (Node, error) {
	if t.unique[query] {
		return t.target, nil
	}
	return &fakeNode{tag: "other"}, nil
}

func names(level []Knot) []string {
	out := make([]string, 0, len(level))
	for _, k := range level {
		out = append(out, k.Name)
	}
	return out
}

func testOptions() *Options {
	opts := &Options{}
	opts.SetDefaults()
	return opts
}
