// Package testpath provides the path type and the shared primitives every
// generator builds on: containment/occurrence counting over a Constraint,
// the admissibility predicate, coverage bookkeeping, and the two
// breadth-first searches (to and from a target edge) that
// BuildPathCoveringEdge composes into a full start-to-end walk.
//
// Every BFS here queues owned prefix copies, never a shared tail: this is a
// correctness requirement, not an optimization — extending a shared
// backing array in place would corrupt sibling frontier entries.
package testpath
