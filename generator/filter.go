package generator

import (
	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

// Filter implements GF: run Edge, then keep only the admissible paths, in
// the order Edge produced them.
type Filter struct{}

var _ Generator = Filter{}

// Generate runs GF over m.
func (Filter) Generate(m *sut.SUT) []testpath.Path {
	t0 := Edge{}.Generate(m)
	covered := make(map[sut.Constraint]struct{}, len(m.Constraints))

	var out []testpath.Path
	for _, p := range t0 {
		if !testpath.Admissible(p, m.Constraints, covered) {
			continue
		}
		out = append(out, p)
		testpath.MarkConstraints(p, m.Constraints, covered)
	}

	return out
}
