package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func knot(name string, penalty float64, level int) Knot {
	return Knot{Name: name, Penalty: penalty, Level: level, kind: kindTag}
}

func TestPath_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single", path: Path{knot(".item", 1, 0)}, want: ".item"},
		{
			name: "adjacent levels use child combinator",
			path: Path{knot("li", 2, 0), knot("ul", 2, 1), knot("#app", 0, 2)},
			want: "#app > ul > li",
		},
		{
			name: "gaps use descendant combinator",
			path: Path{knot("a", 2, 0), knot("b", 2, 1), knot("c", 2, 3)},
			want: "c b > a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPath_Penalty(t *testing.T) {
	t.Parallel()

	p := Path{knot("a", 0.5, 0), knot("b", 2, 1), knot("c", 1, 2)}
	assert.InDelta(t, 3.5, p.Penalty(), 1e-9)
	assert.Zero(t, Path{}.Penalty())
}

func TestPath_WithoutLeavesOriginalIntact(t *testing.T) {
	t.Parallel()

	p := Path{knot("a", 1, 0), knot("b", 1, 1), knot("c", 1, 2)}
	q := p.without(1)

	assert.Equal(t, "c a", q.String())
	assert.Equal(t, "c > b > a", p.String())
}

func TestKnot_NthChild(t *testing.T) {
	t.Parallel()

	k := knot("li", 2, 3).nthChild(4)

	assert.Equal(t, "li:nth-child(4)", k.Name)
	assert.InDelta(t, 3.0, k.Penalty, 0)
	assert.Equal(t, 3, k.Level)
}

func TestKnot_DispensableNth(t *testing.T) {
	t.Parallel()

	assert.False(t, Knot{Name: "#x", kind: kindID}.dispensableNth())
	assert.False(t, Knot{Name: "html", kind: kindTag}.dispensableNth())
	assert.True(t, Knot{Name: "div", kind: kindTag}.dispensableNth())
	assert.True(t, Knot{Name: ".html", kind: kindClass}.dispensableNth())
	assert.True(t, anyKnot().dispensableNth())
}

func TestSortPaths_StableByPenalty(t *testing.T) {
	t.Parallel()

	paths := []Path{
		{knot("first-2", 2, 0)},
		{knot("only-1", 1, 0)},
		{knot("second-2", 2, 0)},
		{knot("zero", 0, 0)},
	}

	sortPaths(paths)

	got := make([]string, 0, len(paths))
	for _, p := range paths {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"zero", "only-1", "first-2", "second-2"}, got)
}

func TestPolicy_Transitions(t *testing.T) {
	t.Parallel()

	chain := []Policy{PolicyAll}
	for p := PolicyAll; ; {
		next, ok := p.next()
		if !ok {
			break
		}
		chain = append(chain, next)
		p = next
	}

	assert.Equal(t, []Policy{PolicyAll, PolicyTwo, PolicyOne, PolicyNone}, chain)
	assert.Equal(t, "none", PolicyNone.String())
	assert.Equal(t, "unknown", Policy(42).String())
}
