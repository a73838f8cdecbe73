package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the target is not an element.
	ErrInvalidInput = errors.New("target is not an element node")

	// ErrNoUniqueSelector is returned when every breadth policy, including
	// the all-wildcard one, failed to produce a selector matching exactly
	// one element.
	ErrNoUniqueSelector = errors.New("unique selector not found")

	// ErrOracleInconsistency is returned when a selector built from the
	// target's own ancestry matches nothing: the tree's navigation and its
	// query engine disagree.
	ErrOracleInconsistency = errors.New("selector derived from the tree matched no element")
)

// OracleError carries the query that matched zero elements.
type OracleError struct {
	Query string
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("can't select any node with selector %q", e.Query)
}

func (e *OracleError) Unwrap() error {
	return ErrOracleInconsistency
}
