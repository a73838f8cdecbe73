package selector

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Base penalties. Lower is preferred; the attribute penalty stays fractional
// so attribute selectors always rank between ids and classes.
const (
	penaltyID    = 0
	penaltyAttr  = 0.5
	penaltyClass = 1
	penaltyTag   = 2
	penaltyAny   = 3
	penaltyNth   = 1
)

// rootTag is the top-level element name; its fragment never gets a
// position qualifier.
const rootTag = "html"

type knotKind int

const (
	kindAny knotKind = iota
	kindID
	kindAttr
	kindClass
	kindTag
)

// Knot is one candidate selector fragment for one ancestor level.
type Knot struct {
	// Name is the literal selector text, e.g. "#main", ".item:nth-child(3)".
	Name string
	// Penalty is the preference cost of the fragment.
	Penalty float64
	// Level is the ancestor distance of the node the fragment describes,
	// 0 being the target itself.
	Level int

	kind knotKind
}

func anyKnot() Knot {
	return Knot{Name: "*", Penalty: penaltyAny, kind: kindAny}
}

// nthChild returns a copy of k qualified with :nth-child(index).
func (k Knot) nthChild(index int) Knot {
	return Knot{
		Name:    k.Name + ":nth-child(" + strconv.Itoa(index) + ")",
		Penalty: k.Penalty + penaltyNth,
		Level:   k.Level,
		kind:    k.kind,
	}
}

// dispensableNth reports whether k may carry a position qualifier. Ids are
// already unique and the root element has no siblings.
func (k Knot) dispensableNth() bool {
	if k.kind == kindID {
		return false
	}
	return !(k.kind == kindTag && k.Name == rootTag)
}

// Path is a sequence of knots ordered from the target outward.
type Path []Knot

// Penalty returns the sum of the knot penalties.
func (p Path) Penalty() float64 {
	var total float64
	for _, k := range p {
		total += k.Penalty
	}
	return total
}

// String assembles the selector. Consecutive levels are joined with the
// child combinator, gaps with the descendant combinator.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}

	parts := make([]string, 0, 2*len(p)-1)
	parts = append(parts, p[len(p)-1].Name)
	for i := len(p) - 2; i >= 0; i-- {
		if p[i].Level == p[i+1].Level-1 {
			parts = append(parts, ">")
		}
		parts = append(parts, p[i].Name)
	}

	return strings.Join(parts, " ")
}

// without returns a copy of p with the knot at index i removed.
func (p Path) without(i int) Path {
	out := make(Path, 0, len(p)-1)
	out = append(out, p[:i]...)
	return append(out, p[i+1:]...)
}

// sortPaths orders paths by ascending penalty, keeping enumeration order
// among equal penalties.
func sortPaths(paths []Path) {
	slices.SortStableFunc(paths, func(a, b Path) int {
		return cmp.Compare(a.Penalty(), b.Penalty())
	})
}
