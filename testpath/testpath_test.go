package testpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/testpath"
)

func buildChain(t *testing.T) *sut.SUT {
	t.Helper()
	g := sut.NewGraph()
	require.NoError(t, g.AddEdge("START", "A"))
	require.NoError(t, g.AddEdge("A", "END1"))
	m := sut.NewSUT(g)
	require.NoError(t, m.SetStart("START"))
	m.AddEnd("END1")

	return m
}

func TestContains_MonotoneLatch(t *testing.T) {
	c := sut.Constraint{From: "A", To: "B"}
	// a, b, a: one 'a' then 'b' satisfies it even though a second a follows.
	require.True(t, testpath.Contains(testpath.Path{"A", "B", "A"}, c))
	require.False(t, testpath.Contains(testpath.Path{"B", "A"}, c))
	require.False(t, testpath.Contains(testpath.Path{"A"}, c))
}

func TestOccurrences_GreedyMatching(t *testing.T) {
	c := sut.Constraint{From: "A", To: "B"}
	// A A B B: two opens, both close -> 2 matches.
	require.Equal(t, 2, testpath.Occurrences(testpath.Path{"A", "A", "B", "B"}, c))
	// A B B: one open closes on first B, second B has nothing to close.
	require.Equal(t, 1, testpath.Occurrences(testpath.Path{"A", "B", "B"}, c))
}

func TestRepeats(t *testing.T) {
	c := sut.Constraint{From: "A", To: "B"}
	require.True(t, testpath.Repeats(testpath.Path{"A", "B", "A", "B"}, c))
	require.False(t, testpath.Repeats(testpath.Path{"A", "B"}, c))
}

func TestEdgeOccurrences(t *testing.T) {
	e := sut.Edge{From: "A", To: "B"}
	require.Equal(t, 2, testpath.EdgeOccurrences(testpath.Path{"A", "B", "A", "B"}, e))
	require.Equal(t, 0, testpath.EdgeOccurrences(testpath.Path{"A", "C", "B"}, e))
}

func TestAdmissible_Negative(t *testing.T) {
	constraints := []sut.Constraint{{From: "A", To: "B", Kind: sut.Negative}}
	covered := map[sut.Constraint]struct{}{}
	require.False(t, testpath.Admissible(testpath.Path{"A", "B"}, constraints, covered))
	require.True(t, testpath.Admissible(testpath.Path{"A", "C"}, constraints, covered))
}

func TestAdmissible_OnceAcrossPaths(t *testing.T) {
	c := sut.Constraint{From: "A", To: "B", Kind: sut.Once}
	constraints := []sut.Constraint{c}
	covered := map[sut.Constraint]struct{}{}

	p1 := testpath.Path{"A", "B"}
	require.True(t, testpath.Admissible(p1, constraints, covered))
	testpath.MarkConstraints(p1, constraints, covered)

	// Same pair again in a second path: now inadmissible since c is covered.
	require.False(t, testpath.Admissible(testpath.Path{"A", "B"}, constraints, covered))
}

func TestAdmissible_OnceRepeatedWithinOnePath(t *testing.T) {
	c := sut.Constraint{From: "A", To: "B", Kind: sut.Once}
	constraints := []sut.Constraint{c}
	covered := map[sut.Constraint]struct{}{}
	require.False(t, testpath.Admissible(testpath.Path{"A", "B", "A", "B"}, constraints, covered))
}

func TestFindPathToEdge_TrivialAtStart(t *testing.T) {
	m := buildChain(t)
	e, ok := m.Graph.GetEdge("START", "A")
	require.True(t, ok)

	p, ok := testpath.FindPathToEdge(m, e)
	require.True(t, ok)
	require.Equal(t, testpath.Path{"START"}, p)
}

func TestFindPathToEdge_WalksBack(t *testing.T) {
	m := buildChain(t)
	e, ok := m.Graph.GetEdge("A", "END1")
	require.True(t, ok)

	p, ok := testpath.FindPathToEdge(m, e)
	require.True(t, ok)
	require.Equal(t, testpath.Path{"START", "A"}, p)
}

func TestFindPathFromEdge_TrivialAtEnd(t *testing.T) {
	m := buildChain(t)
	e, ok := m.Graph.GetEdge("A", "END1")
	require.True(t, ok)

	p, ok := testpath.FindPathFromEdge(m, e)
	require.True(t, ok)
	require.Equal(t, testpath.Path{"END1"}, p)
}

func TestBuildPathCoveringEdge_TrivialChain(t *testing.T) {
	m := buildChain(t)
	e, ok := m.Graph.GetEdge("START", "A")
	require.True(t, ok)

	p, ok := testpath.BuildPathCoveringEdge(m, e)
	require.True(t, ok)
	require.Equal(t, testpath.Path{"START", "A", "END1"}, p)
}

func TestBuildPathCoveringEdge_Unreachable(t *testing.T) {
	g := sut.NewGraph()
	require.NoError(t, g.AddEdge("START", "END1"))
	require.NoError(t, g.AddVertex("ORPHAN"))
	require.NoError(t, g.AddEdge("ORPHAN", "END1"))
	m := sut.NewSUT(g)
	require.NoError(t, m.SetStart("START"))
	m.AddEnd("END1")

	e, ok := g.GetEdge("ORPHAN", "END1")
	require.True(t, ok)

	_, ok = testpath.BuildPathCoveringEdge(m, e)
	require.False(t, ok)
}

func TestPath_KeyAndLen(t *testing.T) {
	p := testpath.Path{"A", "B", "C"}
	require.Equal(t, 2, p.Len())
	require.Equal(t, testpath.Path{"A", "B", "C"}.Key(), p.Key())
	require.NotEqual(t, testpath.Path{"A", "B"}.Key(), p.Key())
}
