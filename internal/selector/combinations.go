package selector

import (
	"iter"
	"slices"

	"github.com/msartiano/finder/internal/logger"
)

// combinations lazily yields the cartesian product of the stack levels.
// The first level (the target's) is the most significant digit.
func combinations(stack [][]Knot) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		combine(stack, make(Path, 0, len(stack)), yield)
	}
}

func combine(stack [][]Knot, prefix Path, yield func(Path) bool) bool {
	if len(stack) == 0 {
		return yield(slices.Clone(prefix))
	}
	for _, k := range stack[0] {
		if !combine(stack[1:], append(prefix, k), yield) {
			return false
		}
	}
	return true
}

// findUniquePath ranks the combinations of stack and returns the first
// unique one. overflow is true when there are more combinations than the
// threshold allows; enumeration stops at that point.
func (s *search) findUniquePath(stack [][]Knot) (path Path, overflow bool, err error) {
	var paths []Path
	for p := range combinations(stack) {
		paths = append(paths, p)
		if len(paths) > s.opts.Threshold {
			s.log.Debug("Combination threshold exceeded",
				logger.Int("levels", len(stack)),
				logger.Int("threshold", s.opts.Threshold),
			)
			return nil, true, nil
		}
	}
	s.stats.Combinations += len(paths)

	sortPaths(paths)
	for _, candidate := range paths {
		ok, uniqueErr := s.unique(candidate)
		if uniqueErr != nil {
			return nil, false, uniqueErr
		}
		if ok {
			return candidate, false, nil
		}
	}

	return nil, false, nil
}
