package visualize

import (
	"image/color"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/cptgraph/cpt/sut"
)

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorStart    = color.RGBA{0xc8, 0xe6, 0xc9, 0xff}
	colorEnd      = color.RGBA{0xff, 0xcd, 0xd2, 0xff}
	colorPlain    = color.RGBA{0xe3, 0xe8, 0xf0, 0xff}
	colorStroke   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorEdge     = color.RGBA{0x6b, 0x80, 0xbf, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
)

func nodeColor(n layoutNode) color.RGBA {
	switch {
	case n.IsStart:
		return colorStart
	case n.IsEnd:
		return colorEnd
	default:
		return colorPlain
	}
}

// WritePNG renders m's graph to a PNG file at path.
func WritePNG(path string, m *sut.SUT) error {
	layout := buildLayout(m)

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	pos := make(map[string]layoutNode, len(layout.Nodes))
	for _, n := range layout.Nodes {
		pos[n.ID] = n
	}

	dc.SetColor(colorEdge)
	dc.SetLineWidth(2)
	for _, e := range layout.Edges {
		from, to := pos[e.From], pos[e.To]
		x1, y1 := from.X+from.W, from.Y+from.H/2
		x2, y2 := to.X, to.Y+to.H/2
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		drawArrowHead(dc, x2, y2)
	}

	for _, n := range layout.Nodes {
		dc.SetColor(nodeColor(n))
		dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, 8)
		dc.Fill()
		dc.SetColor(colorStroke)
		dc.SetLineWidth(1.2)
		dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, 8)
		dc.Stroke()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(n.ID, n.X+n.W/2, n.Y+n.H/2, 0.5, 0.5)
	}

	return dc.SavePNG(path)
}

func drawArrowHead(dc *gg.Context, x, y float64) {
	dc.SetColor(colorEdge)
	dc.NewSubPath()
	dc.MoveTo(x, y)
	dc.LineTo(x-8, y+4)
	dc.LineTo(x-8, y-4)
	dc.ClosePath()
	dc.Fill()
}
