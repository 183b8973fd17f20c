package generator

import (
	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

// VisitLimit bounds how many times any single edge may appear in a
// candidate path during CPC's phase-1 search.
const VisitLimit = 2

// CPC implements GC: phase 1 satisfies every POSITIVE/ONCE constraint with
// an iterative-deepening BFS, phase 2 tops up edge coverage with
// admissible paths.
type CPC struct{}

var _ Generator = CPC{}

// Generate runs GC over m.
func (CPC) Generate(m *sut.SUT) []testpath.Path {
	coveredEdges := make(map[sut.Edge]struct{}, m.Graph.EdgeCount())
	coveredConstraints := make(map[sut.Constraint]struct{}, len(m.Constraints))

	var accepted []testpath.Path

	// Phase 1: satisfy POSITIVE/ONCE constraints in insertion order.
	for _, c := range m.Constraints {
		if c.Kind != sut.Positive && c.Kind != sut.Once {
			continue
		}
		if _, ok := coveredConstraints[c]; ok {
			continue
		}

		p, ok := findAdmissiblePath(m, c, coveredConstraints)
		if !ok {
			continue
		}
		if containsPath(accepted, p) {
			continue
		}

		accepted = append(accepted, p)
		testpath.MarkEdges(p, coveredEdges)
		testpath.MarkConstraints(p, m.Constraints, coveredConstraints)
	}

	// Phase 2: top up edge coverage with admissible paths.
	for _, e := range m.Graph.Edges() {
		if _, ok := coveredEdges[e]; ok {
			continue
		}

		p, ok := testpath.BuildPathCoveringEdge(m, e)
		if !ok {
			continue
		}
		if containsPath(accepted, p) {
			continue
		}
		if !testpath.Admissible(p, m.Constraints, coveredConstraints) {
			continue
		}

		accepted = append(accepted, p)
		testpath.MarkEdges(p, coveredEdges)
		testpath.MarkConstraints(p, m.Constraints, coveredConstraints)
	}

	return accepted
}

// findAdmissiblePath searches for a start-to-end admissible walk containing
// c, deepening the per-edge visit limit from 1 to VisitLimit. Each
// limit level runs an independent breadth-first search from scratch;
// admissibility is checked at expansion time so negative/repeat-violating
// prefixes are pruned before they can grow further.
func findAdmissiblePath(m *sut.SUT, c sut.Constraint, covered map[sut.Constraint]struct{}) (testpath.Path, bool) {
	for limit := 1; limit <= VisitLimit; limit++ {
		queue := make([]testpath.Path, 0, m.Graph.OutDegree(m.Start))
		for _, e := range m.Graph.Outgoing(m.Start) {
			queue = append(queue, testpath.Path{m.Start, e.To})
		}

		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]

			last := p[len(p)-1]
			if m.IsEnd(last) {
				if testpath.Contains(p, c) {
					return p, true
				}
				continue // dead end: do not extend past an end
			}

			for _, e := range m.Graph.Outgoing(last) {
				if testpath.EdgeOccurrences(p, e) >= limit {
					continue
				}
				np := make(testpath.Path, 0, len(p)+1)
				np = append(np, p...)
				np = append(np, e.To)
				if testpath.Admissible(np, m.Constraints, covered) {
					queue = append(queue, np)
				}
			}
		}
	}

	return nil, false
}
