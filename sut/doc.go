// Package sut defines the data model for a System Under Test: a simple
// directed Graph, the Constraint tagged-variant, and the SUT wrapper that
// ties a Graph to a start vertex, an end-vertex set, and an ordered
// constraint list.
//
// Graph is a thread-safe, in-memory, insertion-ordered adjacency structure.
// It supports exactly one mode: simple directed (no weights, no self-loops,
// no parallel edges, no undirected mirroring) — the CPT domain never needs
// more than that, unlike a general-purpose graph library.
//
//	sut.Graph   — vertices & edges, add/query/enumerate.
//	sut.SUT     — Graph + start + ends + constraints.
//	sut.Constraint — (from, to, kind) tagged by ConstraintKind.
//
// All enumeration methods (Vertices, Edges, Outgoing, Incoming) return
// results in insertion order, never sorted, so that two runs built from the
// same input produce identical generator output.
package sut
