package sut

// Outgoing returns the edges leaving id, in the order they were added to the
// graph. Returns an empty slice (not an error) if id has no outgoing edges
// or does not exist — callers that need existence should check HasVertex separately;
// Outgoing is a pure enumerator.
func (g *Graph) Outgoing(id string) []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	src := g.outgoing[id]
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// Incoming returns the edges entering id, in the order they were added to
// the graph.
func (g *Graph) Incoming(id string) []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	src := g.incoming[id]
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// OutDegree returns len(Outgoing(id)) without allocating a slice.
func (g *Graph) OutDegree(id string) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.outgoing[id])
}
