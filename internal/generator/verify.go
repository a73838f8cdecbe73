package generator

import (
	"errors"

	"github.com/msartiano/finder/internal/selector"
)

const percentMultiplier = 100

// ErrNoEntries is returned when verifying an empty page map.
var ErrNoEntries = errors.New("page map has no entries")

// VerifyResult holds the outcome of checking a page map against a document.
type VerifyResult struct {
	// Entries holds one result per page-map entry, in page-map order.
	Entries []EntryResult
	// Total is the number of entries checked.
	Total int
	// Passed is the number of entries that matched exactly one element.
	Passed int
	// SuccessRate is the percentage of entries that passed (0-100).
	SuccessRate float64
}

// EntryResult is the check of a single entry.
type EntryResult struct {
	Name     string
	Selector string
	// Matches is the number of elements the selector matched.
	Matches int
	// Unique is true when Matches is exactly one.
	Unique bool
	// Error is set when the selector could not be evaluated.
	Error string
}

// Failed returns the entries that did not match exactly one element.
func (r *VerifyResult) Failed() []EntryResult {
	var failed []EntryResult
	for _, e := range r.Entries {
		if !e.Unique {
			failed = append(failed, e)
		}
	}
	return failed
}

// OK reports whether every entry passed.
func (r *VerifyResult) OK() bool {
	return r.Passed == r.Total
}

// Verify counts the matches of every page-map selector in tree.
func Verify(pm *PageMap, tree selector.Tree) (*VerifyResult, error) {
	if len(pm.Entries) == 0 {
		return nil, ErrNoEntries
	}

	result := &VerifyResult{
		Entries: make([]EntryResult, 0, len(pm.Entries)),
		Total:   len(pm.Entries),
	}

	for _, e := range pm.Entries {
		er := EntryResult{Name: e.Name, Selector: e.Selector}

		n, err := tree.Count(e.Selector)
		if err != nil {
			er.Error = err.Error()
		} else {
			er.Matches = n
			er.Unique = n == 1
		}

		if er.Unique {
			result.Passed++
		}
		result.Entries = append(result.Entries, er)
	}

	result.SuccessRate = float64(result.Passed) / float64(result.Total) * percentMultiplier
	return result, nil
}
