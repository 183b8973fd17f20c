package testpath

import "strings"

// Path is a finite ordered sequence of vertex IDs. A Path is valid
// once it starts at the SUT's start vertex, ends in the SUT's end-vertex
// set, and every consecutive pair is an edge; the type itself does not
// check any of this, and this package has no validity check for a Path.
type Path []string

// Key returns a delimiter-joined string unique to this sequence of vertex
// IDs, suitable for de-duplicating accepted paths. Vertex IDs never contain
// the delimiter because the loader's grammar tokenizes on '[', ']', ',',
// ':' and whitespace.
func (p Path) Key() string {
	return strings.Join(p, "\x00")
}

// Len returns the number of edges traversed by p (|p| - 1). A
// single-vertex path has zero edges.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// clone returns an independent copy of p, used whenever a BFS frontier item
// is extended so that sibling queue entries never share a backing array.
func clone(p Path) Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}
