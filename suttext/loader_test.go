package suttext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cptgraph/cpt/suttext"
)

func TestParseFormat_TrivialTwoEdgeChain(t *testing.T) {
	src := `START:[A]
A:[END1]
END1:[]
`
	m, err := suttext.ParseFormat("scenario_a.txt", strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "START", m.Start)
	require.ElementsMatch(t, []string{"END1"}, m.Ends())
	require.True(t, m.Graph.HasEdge("START", "A"))
	require.True(t, m.Graph.HasEdge("A", "END1"))
}

func TestParseFormat_EndByPrefixAndByEmptyBracket(t *testing.T) {
	src := `START:[A]
A:[ENDFAST, C]
C:[]
`
	m, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"ENDFAST", "C"}, m.Ends())
}

func TestParseFormat_ConstraintLine(t *testing.T) {
	src := `START:[A]
A:[END1]
END1:[]
Constraint[START - A - POSITIVE]
`
	m, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Constraints, 1)
	require.Equal(t, "START", m.Constraints[0].From)
	require.Equal(t, "A", m.Constraints[0].To)
}

func TestParseFormat_CommentsAndBlankLinesSkipped(t *testing.T) {
	src := "# a comment\n\nSTART:[A]\nA:[END1]\nEND1:[]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.NoError(t, err)
}

func TestParseFormat_MissingColon(t *testing.T) {
	_, err := suttext.ParseFormat("t.txt", strings.NewReader("START[A]\n"))
	require.Error(t, err)
	var pe *suttext.ParseFormatError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, pe.Line)
}

func TestParseFormat_BadBrackets(t *testing.T) {
	_, err := suttext.ParseFormat("t.txt", strings.NewReader("START:(A)\n"))
	require.Error(t, err)
}

func TestParseFormat_EmptySuccessorToken(t *testing.T) {
	src := "START:[A,]\nA:[END1]\nEND1:[]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.Error(t, err)
}

func TestParseFormat_UnknownConstraintType(t *testing.T) {
	src := "START:[A]\nA:[END1]\nEND1:[]\nConstraint[START - A - MAYBE]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.Error(t, err)
}

func TestParseFormat_MissingStart(t *testing.T) {
	src := "A:[END1]\nEND1:[]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing start")
}

func TestParseFormat_EmptyEndSet(t *testing.T) {
	src := "START:[A]\nA:[START]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty end-vertex set")
}

func TestParseFormat_ConstraintReferencesAbsentVertex(t *testing.T) {
	src := "START:[A]\nA:[END1]\nEND1:[]\nConstraint[A - GHOST - POSITIVE]\n"
	_, err := suttext.ParseFormat("t.txt", strings.NewReader(src))
	require.Error(t, err)
}

func TestFileLoad_NotFound(t *testing.T) {
	_, err := suttext.FileLoad("/nonexistent/path/to/sut.txt")
	require.Error(t, err)
	var fe *suttext.FileLoadError
	require.ErrorAs(t, err, &fe)
}

func TestFileLoad_DirectoryGiven(t *testing.T) {
	_, err := suttext.FileLoad(t.TempDir())
	require.Error(t, err)
	var fe *suttext.FileLoadError
	require.ErrorAs(t, err, &fe)
}
