package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

// Report is the numeric result of evaluating a test set against a SUT.
// Each field feeds one CSV column of report.Header.
type Report struct {
	Valid          int
	Size           int
	TotalEdges     int
	UniqueEdges    int
	AvgLen         float64
	StdLen         float64
	EdgeEfficiency float64
	EdgeCoverage   float64
	CovPositive    float64
	CovOnce        float64
	CovNegative    float64
	CovMaxOnce     float64
}

// Compute evaluates every metric for paths against m.
func Compute(m *sut.SUT, paths []testpath.Path) Report {
	return Report{
		Valid:          Valid(m, paths),
		Size:           Size(paths),
		TotalEdges:     TotalEdges(paths),
		UniqueEdges:    UniqueEdges(m, paths),
		AvgLen:         AvgLen(paths),
		StdLen:         StdLen(paths),
		EdgeEfficiency: EdgeEfficiency(m, paths),
		EdgeCoverage:   EdgeCoverage(m, paths),
		CovPositive:    CovPositive(m, paths),
		CovOnce:        CovOnce(m, paths),
		CovNegative:    CovNegative(m, paths),
		CovMaxOnce:     CovMaxOnce(m, paths),
	}
}

// Size returns |T|.
func Size(paths []testpath.Path) int {
	return len(paths)
}

// TotalEdges returns Σ ℓ(p).
func TotalEdges(paths []testpath.Path) int {
	var total int
	for _, p := range paths {
		total += p.Len()
	}

	return total
}

// UniqueEdges returns the number of distinct edges present as a consecutive
// pair in some path of paths.
func UniqueEdges(m *sut.SUT, paths []testpath.Path) int {
	seen := make(map[sut.Edge]struct{})
	for _, p := range paths {
		testpath.MarkEdges(p, seen)
	}

	return len(seen)
}

// AvgLen returns totalEdges/|T|, or 0 if paths is empty.
func AvgLen(paths []testpath.Path) float64 {
	if len(paths) == 0 {
		return 0
	}

	return float64(TotalEdges(paths)) / float64(len(paths))
}

// StdLen returns the sample standard deviation (n-1 denominator) of path
// edge lengths, or -1 if |T| < 2.
func StdLen(paths []testpath.Path) float64 {
	if len(paths) < 2 {
		return -1
	}

	lens := make([]float64, len(paths))
	for i, p := range paths {
		lens[i] = float64(p.Len())
	}

	return stat.StdDev(lens, nil)
}

// EdgeEfficiency returns uniqueEdges/totalEdges, or 0 if totalEdges is 0.
func EdgeEfficiency(m *sut.SUT, paths []testpath.Path) float64 {
	total := TotalEdges(paths)
	if total == 0 {
		return 0
	}

	return float64(UniqueEdges(m, paths)) / float64(total)
}

// EdgeCoverage returns uniqueEdges/|Es|, or 0 if the graph has no edges.
func EdgeCoverage(m *sut.SUT, paths []testpath.Path) float64 {
	total := m.Graph.EdgeCount()
	if total == 0 {
		return 0
	}

	return float64(UniqueEdges(m, paths)) / float64(total)
}

// constraintsOfKind filters m.Constraints by kind.
func constraintsOfKind(m *sut.SUT, kind sut.ConstraintKind) []sut.Constraint {
	var out []sut.Constraint
	for _, c := range m.Constraints {
		if c.Kind == kind {
			out = append(out, c)
		}
	}

	return out
}

// pathCountContaining returns the number of paths containing c, using
// testpath.Contains: a per-path count, not a summed occurrence count.
func pathCountContaining(c sut.Constraint, paths []testpath.Path) int {
	var n int
	for _, p := range paths {
		if testpath.Contains(p, c) {
			n++
		}
	}

	return n
}

// atLeastOnceContaining, satisfiesOnce, satisfiesNegative, and
// satisfiesMaxOnce implement the per-constraint-type predicates, each over
// the per-path containment count pathCountContaining returns.
func atLeastOnceContaining(c sut.Constraint, paths []testpath.Path) bool {
	return pathCountContaining(c, paths) >= 1
}

func satisfiesOnce(c sut.Constraint, paths []testpath.Path) bool {
	return pathCountContaining(c, paths) == 1
}

func satisfiesNegative(c sut.Constraint, paths []testpath.Path) bool {
	return pathCountContaining(c, paths) == 0
}

func satisfiesMaxOnce(c sut.Constraint, paths []testpath.Path) bool {
	return pathCountContaining(c, paths) <= 1
}

// satisfies dispatches to the predicate matching c.Kind.
func satisfies(c sut.Constraint, paths []testpath.Path) bool {
	switch c.Kind {
	case sut.Positive:
		return atLeastOnceContaining(c, paths)
	case sut.Once:
		return satisfiesOnce(c, paths)
	case sut.Negative:
		return satisfiesNegative(c, paths)
	case sut.MaxOnce:
		return satisfiesMaxOnce(c, paths)
	default:
		return true
	}
}

// Valid returns 1 if every constraint in m is satisfied, else -k where k is
// the number unsatisfied.
func Valid(m *sut.SUT, paths []testpath.Path) int {
	var unsatisfied int
	for _, c := range m.Constraints {
		if !satisfies(c, paths) {
			unsatisfied++
		}
	}
	if unsatisfied == 0 {
		return 1
	}

	return -unsatisfied
}

// coverageRatio returns the fraction of cs satisfying pred, or -1 if cs is
// empty.
func coverageRatio(cs []sut.Constraint, paths []testpath.Path, pred func(sut.Constraint, []testpath.Path) bool) float64 {
	if len(cs) == 0 {
		return -1
	}

	var n int
	for _, c := range cs {
		if pred(c, paths) {
			n++
		}
	}

	return float64(n) / float64(len(cs))
}

// CovPositive returns the fraction of POSITIVE constraints with at least
// one containing path, or -1 if there are none.
func CovPositive(m *sut.SUT, paths []testpath.Path) float64 {
	return coverageRatio(constraintsOfKind(m, sut.Positive), paths, atLeastOnceContaining)
}

// CovOnce returns the fraction of ONCE constraints with exactly one
// containing path, or -1 if there are none.
func CovOnce(m *sut.SUT, paths []testpath.Path) float64 {
	return coverageRatio(constraintsOfKind(m, sut.Once), paths, satisfiesOnce)
}

// CovNegative returns the fraction of NEGATIVE constraints with at least
// one containing path — a violation rate, not a compliance rate. Callers
// wanting compliance should use 1-CovNegative.
func CovNegative(m *sut.SUT, paths []testpath.Path) float64 {
	return coverageRatio(constraintsOfKind(m, sut.Negative), paths, atLeastOnceContaining)
}

// CovMaxOnce returns the fraction of MAX_ONCE constraints with at most one
// containing path, or -1 if there are none.
func CovMaxOnce(m *sut.SUT, paths []testpath.Path) float64 {
	return coverageRatio(constraintsOfKind(m, sut.MaxOnce), paths, satisfiesMaxOnce)
}
