package visualize

import (
	"github.com/cptgraph/cpt/sut"
)

type layoutNode struct {
	ID      string
	X, Y    float64
	W, H    float64
	IsStart bool
	IsEnd   bool
}

type layoutEdge struct {
	From, To string
}

type layoutResult struct {
	Nodes  []layoutNode
	Edges  []layoutEdge
	Width  int
	Height int
}

const (
	nodeW   = 120.0
	nodeH   = 48.0
	colGap  = 60.0
	rowGap  = 24.0
	padding = 24.0
)

// buildLayout assigns each vertex a column equal to its BFS distance from
// m.Start (vertices unreachable from Start are placed in an extra trailing
// column) and rows vertices within a column in m.Graph's insertion order,
// mirroring the level-then-rank placement the pack's graph exporter uses.
func buildLayout(m *sut.SUT) layoutResult {
	level := bfsLevels(m)

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}

	byLevel := make(map[int][]string)
	for _, v := range m.Graph.Vertices() {
		l := level[v]
		byLevel[l] = append(byLevel[l], v)
	}

	maxRows := 0
	var nodes []layoutNode
	for l := 0; l <= maxLevel; l++ {
		vs := byLevel[l]
		if len(vs) > maxRows {
			maxRows = len(vs)
		}
		for i, v := range vs {
			nodes = append(nodes, layoutNode{
				ID:      v,
				X:       padding + float64(l)*(nodeW+colGap),
				Y:       padding + float64(i)*(nodeH+rowGap),
				W:       nodeW,
				H:       nodeH,
				IsStart: v == m.Start,
				IsEnd:   m.IsEnd(v),
			})
		}
	}

	var edges []layoutEdge
	for _, e := range m.Graph.Edges() {
		edges = append(edges, layoutEdge{From: e.From, To: e.To})
	}

	width := int(padding*2 + float64(maxLevel+1)*(nodeW+colGap))
	height := int(padding*2 + float64(maxRows)*(nodeH+rowGap) + nodeH)
	if width < 320 {
		width = 320
	}
	if height < 200 {
		height = 200
	}

	return layoutResult{Nodes: nodes, Edges: edges, Width: width, Height: height}
}

// bfsLevels returns each vertex's BFS distance from m.Start. Vertices
// unreachable from Start get one level past the farthest reachable one, so
// they still render instead of overlapping column 0.
func bfsLevels(m *sut.SUT) map[string]int {
	level := make(map[string]int)
	if m.Graph.HasVertex(m.Start) {
		level[m.Start] = 0
		queue := []string{m.Start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, e := range m.Graph.Outgoing(v) {
				if _, seen := level[e.To]; seen {
					continue
				}
				level[e.To] = level[v] + 1
				queue = append(queue, e.To)
			}
		}
	}

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	for _, v := range m.Graph.Vertices() {
		if _, ok := level[v]; !ok {
			level[v] = maxLevel + 1
		}
	}

	return level
}
