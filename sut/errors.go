package sut

import "errors"

// Sentinel errors for the sut package. Callers branch with errors.Is;
// messages are never stringly matched.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("sut: vertex ID is empty")

	// ErrSelfLoop indicates an edge was requested from a vertex to itself.
	// An edge is an ordered pair (u,v) with u != v.
	ErrSelfLoop = errors.New("sut: self-loops are not allowed")

	// ErrVertexNotFound indicates a query referenced a vertex absent from
	// the graph.
	ErrVertexNotFound = errors.New("sut: vertex not found")

	// ErrStartAlreadySet indicates SetStart was called twice on the same SUT.
	ErrStartAlreadySet = errors.New("sut: start vertex already set")

	// ErrNoStart indicates a SUT was validated before its start vertex was set.
	ErrNoStart = errors.New("sut: start vertex not set")

	// ErrNoEnds indicates a SUT was validated with an empty end-vertex set.
	ErrNoEnds = errors.New("sut: end-vertex set is empty")

	// ErrUnknownVertex indicates a constraint or start/end designation
	// referenced a vertex that is not present in the graph.
	ErrUnknownVertex = errors.New("sut: references a vertex absent from the graph")
)
