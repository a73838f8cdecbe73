package selector

import (
	"iter"

	"github.com/msartiano/finder/internal/logger"
)

// optimizeScope is shared across the whole recursive exploration of one
// seed path.
type optimizeScope struct {
	counter int
	visited map[string]struct{}
	err     error
}

// optimize lazily yields strictly shorter paths obtained by dropping interior
// knots from path. Every yielded path is unique and still resolves to target.
// An oracle failure stops the sequence and is reported by s.optimizeErr.
func (s *search) optimize(path Path, target Node) iter.Seq[Path] {
	scope := &optimizeScope{visited: make(map[string]struct{})}
	s.scope = scope

	return func(yield func(Path) bool) {
		s.shorten(path, target, scope, yield)
		s.stats.OptimizerTries = scope.counter
	}
}

// optimizeErr returns the error that stopped the last optimize sequence.
func (s *search) optimizeErr() error {
	if s.scope == nil {
		return nil
	}
	return s.scope.err
}

// shorten returns false when the whole exploration must stop.
func (s *search) shorten(path Path, target Node, scope *optimizeScope, yield func(Path) bool) bool {
	if len(path) <= 2 || len(path) <= s.opts.OptimizedMinLength {
		return true
	}

	for i := 1; i < len(path)-1; i++ {
		if scope.counter > s.opts.MaxNumberOfTries {
			s.log.Debug("Optimization budget exhausted", logger.Int("tries", scope.counter))
			return false
		}
		scope.counter++

		candidate := path.without(i)
		key := candidate.String()
		if _, seen := scope.visited[key]; seen {
			return true
		}
		scope.visited[key] = struct{}{}

		ok, err := s.resolves(candidate, target)
		if err != nil {
			scope.err = err
			return false
		}
		if !ok {
			continue
		}

		if !yield(candidate) {
			return false
		}
		if !s.shorten(candidate, target, scope, yield) {
			return false
		}
	}

	return true
}

// resolves reports whether candidate is unique and selects target.
func (s *search) resolves(candidate Path, target Node) (bool, error) {
	ok, err := s.unique(candidate)
	if err != nil || !ok {
		return false, err
	}
	return s.same(candidate, target)
}
