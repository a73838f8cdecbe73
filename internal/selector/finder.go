// Package selector synthesizes short CSS selectors that match exactly one
// element of a document.
//
// The search walks from the target element up to the top-level element,
// collecting candidate fragments (id, attributes, classes, tag, wildcard,
// each optionally qualified with :nth-child) per ancestor. Combinations are
// ranked by penalty and checked against the document until one matches a
// single element. When the number of combinations gets too large the walk is
// restarted with a narrower breadth policy. The winning path is then
// shortened by dropping interior fragments as long as the result stays
// unique and still selects the target.
package selector

import (
	"fmt"
	"slices"

	"github.com/msartiano/finder/internal/logger"
)

// Stats describes the work done by one synthesis.
type Stats struct {
	// Queries is the number of oracle calls.
	Queries int
	// Combinations is the number of ranked candidate paths.
	Combinations int
	// Fallbacks is the number of breadth-policy transitions.
	Fallbacks int
	// OptimizerTries is the number of removal attempts by the optimizer.
	OptimizerTries int
	// Optimized is the number of shorter paths the optimizer produced.
	Optimized int
}

// Result is the outcome of Finder.Find.
type Result struct {
	Selector string
	Penalty  float64
	// Policy is the breadth policy that produced the seed path.
	Policy Policy
	Stats  Stats
}

// Finder synthesizes selectors against one tree.
type Finder struct {
	tree Tree
	opts Options
}

// New creates a Finder. opts is copied and completed with defaults.
func New(tree Tree, opts Options) *Finder {
	opts.SetDefaults()
	return &Finder{
		tree: tree,
		opts: opts,
	}
}

// Synthesize returns the selector for target. See Finder.Find.
func Synthesize(tree Tree, target Node, opts Options) (string, error) {
	res, err := New(tree, opts).Find(target)
	if err != nil {
		return "", err
	}
	return res.Selector, nil
}

// Find returns the lowest-penalty unique selector found for target.
//
// A top-level element (one without a parent element) yields its tag name
// without querying the tree.
func (f *Finder) Find(target Node) (Result, error) {
	if target == nil || !target.IsElement() {
		return Result{}, ErrInvalidInput
	}
	if target.Parent() == nil {
		return Result{Selector: target.TagName()}, nil
	}

	s := newSearch(f.tree, &f.opts)

	path, policy, err := s.bottomUp(target)
	if err != nil {
		return Result{Policy: policy, Stats: s.stats}, fmt.Errorf("find selector for <%s>: %w", target.TagName(), err)
	}

	optimized := slices.Collect(s.optimize(path, target))
	if optErr := s.optimizeErr(); optErr != nil {
		return Result{Policy: policy, Stats: s.stats}, fmt.Errorf("optimize %q: %w", path.String(), optErr)
	}
	s.stats.Optimized = len(optimized)
	if len(optimized) > 0 {
		sortPaths(optimized)
		path = optimized[0]
	}

	res := Result{
		Selector: path.String(),
		Penalty:  path.Penalty(),
		Policy:   policy,
		Stats:    s.stats,
	}

	s.log.Debug("Selector found",
		logger.String("selector", res.Selector),
		logger.Float64("penalty", res.Penalty),
		logger.String("policy", policy.String()),
		logger.Int("queries", res.Stats.Queries),
		logger.Int("optimized", res.Stats.Optimized),
	)

	return res, nil
}
