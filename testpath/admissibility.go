package testpath

import "github.com/cptgraph/cpt/sut"

// Admissible reports whether p violates none of constraints, given the set
// of constraints already witnessed by prior accepted paths:
//
//   - any NEGATIVE c with Contains(p, c) is a violation;
//   - any ONCE/MAX_ONCE c with Repeats(p, c) is a violation (used twice
//     within p alone);
//   - any ONCE/MAX_ONCE c that Contains(p, c) and is already in covered is
//     a violation (re-using it across paths once it is globally present).
func Admissible(p Path, constraints []sut.Constraint, covered map[sut.Constraint]struct{}) bool {
	for _, c := range constraints {
		switch c.Kind {
		case sut.Negative:
			if Contains(p, c) {
				return false
			}
		case sut.Once, sut.MaxOnce:
			if Repeats(p, c) {
				return false
			}
			if Contains(p, c) {
				if _, ok := covered[c]; ok {
					return false
				}
			}
		}
	}

	return true
}

// MarkEdges records every consecutive pair of p in edges. Idempotent.
func MarkEdges(p Path, edges map[sut.Edge]struct{}) {
	for i := 0; i+1 < len(p); i++ {
		edges[sut.Edge{From: p[i], To: p[i+1]}] = struct{}{}
	}
}

// MarkConstraints records every c in constraints that p contains, in
// covered. Idempotent.
func MarkConstraints(p Path, constraints []sut.Constraint, covered map[sut.Constraint]struct{}) {
	for _, c := range constraints {
		if Contains(p, c) {
			covered[c] = struct{}{}
		}
	}
}
