package generator

import (
	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

// Generator produces a fresh test set from a SUT. Implementations never
// mutate m; coveredEdges/coveredConstraints bookkeeping is local to one
// Generate call and owned exclusively by it.
type Generator interface {
	Generate(m *sut.SUT) []testpath.Path
}

// containsPath reports whether any path in accepted has the same vertex
// sequence as p, used by CPC to avoid accepting a duplicate walk.
func containsPath(accepted []testpath.Path, p testpath.Path) bool {
	key := p.Key()
	for _, a := range accepted {
		if a.Key() == key {
			return true
		}
	}

	return false
}
