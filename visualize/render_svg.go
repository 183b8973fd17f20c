package visualize

import (
	"fmt"
	"image/color"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/cptgraph/cpt/sut"
)

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteSVG renders m's graph to an SVG file at path.
func WriteSVG(path string, m *sut.SUT) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return renderSVGToWriter(f, m)
}

func renderSVGToWriter(w io.Writer, m *sut.SUT) error {
	layout := buildLayout(m)

	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))

	pos := make(map[string]layoutNode, len(layout.Nodes))
	for _, n := range layout.Nodes {
		pos[n.ID] = n
	}

	for _, e := range layout.Edges {
		from, to := pos[e.From], pos[e.To]
		x1, y1 := int(from.X+from.W), int(from.Y+from.H/2)
		x2, y2 := int(to.X), int(to.Y+to.H/2)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:2", css(colorEdge)))
		canvas.Polygon(
			[]int{x2, x2 - 8, x2 - 8},
			[]int{y2, y2 + 4, y2 - 4},
			fmt.Sprintf("fill:%s", css(colorEdge)),
		)
	}

	for _, n := range layout.Nodes {
		x, y := int(n.X), int(n.Y)
		canvas.Roundrect(x, y, int(n.W), int(n.H), 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.2", css(nodeColor(n)), css(colorStroke)))
		canvas.Text(x+int(n.W)/2, y+int(n.H)/2+4, n.ID,
			fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;text-anchor:middle", css(colorText)))
	}

	canvas.End()

	return nil
}
