// Package metrics computes the numeric report a generated test set is
// quantified with: a validity verdict, the set's size, edge totals and
// coverage, path-length statistics, and per-constraint-type coverage
// ratios.
//
// valid and the per-type coverage ratios use Σ_p [Contains(p, c)] — a
// per-path containment count — rather than summing testpath.Occurrences
// across paths, which would double-count a constraint matched more than
// once within a single path.
//
// The sample standard deviation of path length is computed with gonum/stat;
// the mean path length is a plain division.
package metrics
