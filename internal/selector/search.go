package selector

import (
	"github.com/msartiano/finder/internal/logger"
)

// walkState is the outcome of one upward walk under a single policy.
type walkState int

const (
	stateWalking walkState = iota
	stateFound
	stateExhausted
	stateFallback
)

// search holds the per-call state of one synthesis. Nothing in it is shared
// between calls.
type search struct {
	tree  Tree
	opts  *Options
	log   logger.Logger
	stats Stats
	scope *optimizeScope
}

func newSearch(tree Tree, opts *Options) *search {
	return &search{
		tree: tree,
		opts: opts,
		log:  opts.Logger,
	}
}

// bottomUp runs the policy chain all → two → one → none until a walk
// finds a unique path.
func (s *search) bottomUp(target Node) (Path, Policy, error) {
	policy := PolicyAll
	for {
		path, state, err := s.walk(target, policy)
		if err != nil {
			return nil, policy, err
		}
		if state == stateFound {
			return path, policy, nil
		}

		next, ok := policy.next()
		if !ok {
			return nil, policy, ErrNoUniqueSelector
		}

		s.log.Debug("Falling back to narrower policy",
			logger.String("from", policy.String()),
			logger.String("to", next.String()),
			logger.Bool("overflow", state == stateFallback),
		)
		s.stats.Fallbacks++
		policy = next
	}
}

// walk climbs from target to the top-level element, pushing one level per
// ancestor and trying to assemble a unique path once the stack is at least
// SeedMinLength deep.
func (s *search) walk(target Node, policy Policy) (Path, walkState, error) {
	var stack [][]Knot
	triedFull := false

	depth := 0
	for current := target; current != nil; current = current.Parent() {
		stack = append(stack, s.opts.level(current, policy, depth))
		depth++
		triedFull = false

		if len(stack) < s.opts.SeedMinLength {
			continue
		}

		path, overflow, err := s.findUniquePath(stack)
		if err != nil {
			return nil, stateWalking, err
		}
		if overflow {
			return nil, stateFallback, nil
		}
		if path != nil {
			return path, stateFound, nil
		}
		triedFull = true
	}

	// The stack never reached SeedMinLength: give the whole chain one try.
	if !triedFull {
		path, overflow, err := s.findUniquePath(stack)
		if err != nil {
			return nil, stateWalking, err
		}
		if overflow {
			return nil, stateFallback, nil
		}
		if path != nil {
			return path, stateFound, nil
		}
	}

	return nil, stateExhausted, nil
}
