package selector

import (
	"github.com/msartiano/finder/internal/cssescape"
)

// knots returns every admissible fragment for n in priority order:
// id, attributes, classes, tag. The wildcard is used only when nothing
// else is admissible.
func (o *Options) knots(n Node) []Knot {
	var level []Knot

	if id := n.ID(); id != "" && o.IDName(id) {
		level = append(level, Knot{Name: "#" + cssescape.Ident(id), Penalty: penaltyID, kind: kindID})
	}

	for _, a := range n.Attributes() {
		if !o.Attr(a.Name, a.Value) {
			continue
		}
		level = append(level, Knot{
			Name:    "[" + cssescape.Ident(a.Name) + `="` + cssescape.String(a.Value) + `"]`,
			Penalty: penaltyAttr,
			kind:    kindAttr,
		})
	}

	for _, name := range n.ClassNames() {
		if name == "" || !o.ClassName(name) {
			continue
		}
		level = append(level, Knot{Name: "." + cssescape.Ident(name), Penalty: penaltyClass, kind: kindClass})
	}

	if tag := n.TagName(); tag != "" && o.TagName(tag) {
		level = append(level, Knot{Name: tag, Penalty: penaltyTag, kind: kindTag})
	}

	if len(level) == 0 {
		level = append(level, anyKnot())
	}

	return level
}

// level builds the candidate list for n at the given depth under policy.
func (o *Options) level(n Node, policy Policy, depth int) []Knot {
	level := o.knots(n)
	index, hasIndex := n.Position()

	switch policy {
	case PolicyAll:
		if hasIndex {
			base := level
			for _, k := range base {
				if k.dispensableNth() {
					level = append(level, k.nthChild(index))
				}
			}
		}
	case PolicyTwo:
		level = level[:1]
		if hasIndex && level[0].dispensableNth() {
			level = append(level, level[0].nthChild(index))
		}
	case PolicyOne:
		level = level[:1]
		if hasIndex && level[0].dispensableNth() {
			level[0] = level[0].nthChild(index)
		}
	case PolicyNone:
		level = []Knot{anyKnot()}
		if hasIndex {
			level[0] = level[0].nthChild(index)
		}
	}

	for i := range level {
		level[i].Level = depth
	}

	return level
}
