package testpath

import "github.com/cptgraph/cpt/sut"

// FindPathToEdge runs a breadth-first search over incoming edges, starting
// at e.From and walking backward until m.Start is reached. Each
// frontier element is an owned prefix (the eventual [start, ..., e.From]
// path); an edge is never traversed twice in the same prefix, which is
// what keeps the search from looping forever around a cycle. Predecessor
// enumeration order is the graph's insertion order (sut.Graph.Incoming),
// so two runs over the same SUT return the same path.
//
// Returns ([e.From], true) when e.From is already the start vertex, or
// (nil, false) if no such path exists.
func FindPathToEdge(m *sut.SUT, e sut.Edge) (Path, bool) {
	if e.From == m.Start {
		return Path{m.Start}, true
	}

	queue := make([]Path, 0, m.Graph.OutDegree(e.From)+1)
	for _, in := range m.Graph.Incoming(e.From) {
		queue = append(queue, Path{in.From, e.From})
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		head := p[0]
		if head == m.Start {
			return p, true
		}
		for _, in := range m.Graph.Incoming(head) {
			if EdgeOccurrences(p, in) > 0 {
				continue // edge already used in this prefix: would re-enter a cycle
			}
			np := make(Path, 0, len(p)+1)
			np = append(np, in.From)
			np = append(np, p...)
			queue = append(queue, np)
		}
	}

	return nil, false
}

// FindPathFromEdge runs a breadth-first search over outgoing edges,
// starting at e.To and walking forward until some end vertex is reached.
// Symmetric to FindPathToEdge: frontier elements are owned
// prefixes, an edge is never reused within one prefix, and successor
// enumeration follows insertion order.
//
// Returns ([e.To], true) when e.To is already an end vertex, or
// (nil, false) if no end is reachable.
func FindPathFromEdge(m *sut.SUT, e sut.Edge) (Path, bool) {
	if m.IsEnd(e.To) {
		return Path{e.To}, true
	}

	queue := make([]Path, 0, m.Graph.OutDegree(e.To)+1)
	for _, out := range m.Graph.Outgoing(e.To) {
		queue = append(queue, Path{e.To, out.To})
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		last := p[len(p)-1]
		if m.IsEnd(last) {
			return p, true
		}
		for _, out := range m.Graph.Outgoing(last) {
			if EdgeOccurrences(p, out) > 0 {
				continue
			}
			np := clone(p)
			np = append(np, out.To)
			queue = append(queue, np)
		}
	}

	return nil, false
}

// BuildPathCoveringEdge constructs a full start-to-end walk that traverses
// e, by finding a prefix up to e.From, a suffix from e.To, and concatenating
// them. ps ends with e.From and pe starts with e.To, so the
// concatenation traverses e exactly at the junction.
//
// Returns (nil, false) if either half is unreachable, or if the
// concatenation does not begin at m.Start or end in an end vertex.
func BuildPathCoveringEdge(m *sut.SUT, e sut.Edge) (Path, bool) {
	ps, ok := FindPathToEdge(m, e)
	if !ok {
		return nil, false
	}
	pe, ok := FindPathFromEdge(m, e)
	if !ok {
		return nil, false
	}

	full := make(Path, 0, len(ps)+len(pe))
	full = append(full, ps...)
	full = append(full, pe...)

	if full[0] != m.Start || !m.IsEnd(full[len(full)-1]) {
		return nil, false
	}

	return full, true
}
