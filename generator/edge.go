package generator

import (
	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

// Edge implements GE: for every uncovered edge, in graph iteration order,
// build one path covering it and mark its edges covered. No constraint is
// consulted here.
type Edge struct{}

var _ Generator = Edge{}

// Generate runs GE over m.
//
// When BuildPathCoveringEdge returns ⊥ (it finds no start-to-end walk
// through e — an unreachable edge, say), Generate skips emission rather
// than appending the degenerate empty path. Every path this returns is
// therefore a genuine start-to-end walk, so callers never need to filter
// ⊥ results themselves.
func (Edge) Generate(m *sut.SUT) []testpath.Path {
	covered := make(map[sut.Edge]struct{}, m.Graph.EdgeCount())

	var out []testpath.Path
	for _, e := range m.Graph.Edges() {
		if _, ok := covered[e]; ok {
			continue
		}

		p, ok := testpath.BuildPathCoveringEdge(m, e)
		if !ok {
			continue
		}

		out = append(out, p)
		testpath.MarkEdges(p, covered)
	}

	return out
}
