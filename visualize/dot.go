package visualize

import (
	"fmt"
	"io"

	"github.com/cptgraph/cpt/sut"
)

// WriteDOT writes m's graph as a Graphviz DOT digraph to w. The start
// vertex and end vertices are styled distinctly; vertices and edges are
// emitted in m.Graph's insertion order so the output is deterministic.
func WriteDOT(w io.Writer, m *sut.SUT) error {
	if _, err := fmt.Fprintln(w, "digraph sut {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}

	for _, v := range m.Graph.Vertices() {
		shape := "ellipse"
		style := ""
		switch {
		case v == m.Start:
			style = ` style=filled fillcolor="#c8e6c9"`
		case m.IsEnd(v):
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "  %q [shape=%s%s];\n", v, shape, style); err != nil {
			return err
		}
	}

	for _, e := range m.Graph.Edges() {
		if _, err := fmt.Fprintf(w, "  %q -> %q;\n", e.From, e.To); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")

	return err
}
