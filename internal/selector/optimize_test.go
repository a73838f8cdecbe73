package selector

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenTree = errors.New("broken tree")

type brokenTree struct{}

func (brokenTree) Count(string) (int, error)  { return 0, errBrokenTree }
func (brokenTree) First(string) (Node, error) { return nil, errBrokenTree }

func chain(n int) Path {
	p := make(Path, 0, n)
	for i := range n {
		p = append(p, knot("a"+strconv.Itoa(i), 2, i))
	}
	return p
}

func TestOptimize_YieldsShorterResolvingPaths(t *testing.T) {
	t.Parallel()

	seed := chain(6)
	drop2 := seed.without(2)
	drop3 := seed.without(3)
	drop23 := drop2.without(2)

	target := &fakeNode{tag: "a0"}
	tree := newScriptedTree(target, drop2.String(), drop3.String(), drop23.String())
	s := newSearch(tree, testOptions())

	got := slices.Collect(s.optimize(seed, target))

	require.NoError(t, s.optimizeErr())
	require.Len(t, got, 3)
	assert.Equal(t, drop2.String(), got[0].String())
	assert.Equal(t, drop23.String(), got[1].String())
	assert.Equal(t, drop3.String(), got[2].String())

	for _, p := range got {
		assert.Less(t, len(p), len(seed))
		assert.LessOrEqual(t, p.Penalty(), seed.Penalty())
		assert.Equal(t, "a0", p[0].Name, "the target knot is kept")
		assert.Equal(t, "a5", p[len(p)-1].Name, "the outermost knot is kept")
	}

	// Reached twice, through drop2 and drop3, but checked once.
	assert.Equal(t, 1, tree.counts[drop23.String()])
	assert.Equal(t, 11, s.stats.OptimizerTries)
}

func TestOptimize_RespectsBudget(t *testing.T) {
	t.Parallel()

	target := &fakeNode{tag: "a0"}
	tree := newScriptedTree(target)
	opts := testOptions()
	opts.MaxNumberOfTries = 2
	s := newSearch(tree, opts)

	got := slices.Collect(s.optimize(chain(6), target))

	assert.Empty(t, got)
	assert.Equal(t, 3, s.stats.OptimizerTries)
	assert.Len(t, tree.counts, 3)
}

func TestOptimize_ShortPathsAreLeftAlone(t *testing.T) {
	t.Parallel()

	target := &fakeNode{tag: "a0"}
	tree := newScriptedTree(target)
	opts := testOptions()
	opts.OptimizedMinLength = 3
	s := newSearch(tree, opts)

	assert.Empty(t, slices.Collect(s.optimize(chain(3), target)))
	assert.Empty(t, slices.Collect(s.optimize(chain(2), target)))
	assert.Empty(t, tree.counts)
}

func TestOptimize_RejectsPathsSelectingAnotherElement(t *testing.T) {
	t.Parallel()

	seed := chain(4)
	shorter := seed.without(1)

	// Unique, but the first match is not the target.
	tree := newScriptedTree(&fakeNode{tag: "impostor"}, shorter.String())
	s := newSearch(tree, testOptions())

	got := slices.Collect(s.optimize(seed, &fakeNode{tag: "a0"}))

	assert.Empty(t, got)
	require.NoError(t, s.optimizeErr())
}

func TestOptimize_OracleFailureStopsSequence(t *testing.T) {
	t.Parallel()

	s := newSearch(brokenTree{}, testOptions())

	got := slices.Collect(s.optimize(chain(5), &fakeNode{tag: "a0"}))

	assert.Empty(t, got)
	require.Error(t, s.optimizeErr())
	assert.ErrorIs(t, s.optimizeErr(), errBrokenTree)
	assert.Equal(t, 1, s.stats.OptimizerTries)
}
