package selector

import "fmt"

// unique reports whether the assembled path matches exactly one element.
// A zero count is an *OracleError.
func (s *search) unique(p Path) (bool, error) {
	query := p.String()
	s.stats.Queries++

	n, err := s.tree.Count(query)
	if err != nil {
		return false, fmt.Errorf("count matches for %q: %w", query, err)
	}

	switch n {
	case 0:
		return false, &OracleError{Query: query}
	case 1:
		return true, nil
	default:
		return false, nil
	}
}

// same reports whether the first match of the assembled path is target.
func (s *search) same(p Path, target Node) (bool, error) {
	query := p.String()
	s.stats.Queries++

	first, err := s.tree.First(query)
	if err != nil {
		return false, fmt.Errorf("first match for %q: %w", query, err)
	}
	if first == nil {
		return false, nil
	}

	return first == target, nil
}
