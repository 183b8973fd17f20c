package suttext

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cptgraph/cpt/sut"
)

// FileLoad reads path and parses it as a SUT text file. A missing file, a
// directory given where a file is expected, or any other I/O error is
// wrapped in a *FileLoadError; grammar or validation failures surface as a
// *ParseFormatError.
func FileLoad(path string) (*sut.SUT, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileLoadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileLoadError{Path: path, Err: errIsDirectory}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileLoadError{Path: path, Err: err}
	}
	defer f.Close()

	return ParseFormat(path, f)
}

var errIsDirectory = &parseHelperError{"expected a file, found a directory"}

type parseHelperError struct{ msg string }

func (e *parseHelperError) Error() string { return e.msg }

// ParseFormat parses r as a SUT text file. path is used only to annotate
// error messages; it need not be a real filesystem path.
func ParseFormat(path string, r io.Reader) (*sut.SUT, error) {
	g := sut.NewGraph()
	m := sut.NewSUT(g)

	var sawAnyDecl bool
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "Constraint[") {
			c, err := parseConstraintLine(path, lineNo, line)
			if err != nil {
				return nil, err
			}
			m.AddConstraint(c)
			continue
		}

		if err := parseDeclLine(path, lineNo, line, m); err != nil {
			return nil, err
		}
		sawAnyDecl = true
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileLoadError{Path: path, Err: err}
	}
	if !sawAnyDecl {
		return nil, &ParseFormatError{Path: path, Msg: "no vertex declarations found"}
	}
	if !m.HasStart() {
		return nil, &ParseFormatError{Path: path, Msg: "missing start vertex"}
	}
	if len(m.Ends()) == 0 {
		return nil, &ParseFormatError{Path: path, Msg: "empty end-vertex set"}
	}
	if err := m.Validate(); err != nil {
		return nil, &ParseFormatError{Path: path, Msg: err.Error()}
	}

	return m, nil
}

// parseDeclLine parses a "<vertex>:[<succ1>,<succ2>,...]" line, registering
// the vertex, its edges, and any start/end designation it implies.
func parseDeclLine(path string, lineNo int, line string, m *sut.SUT) error {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return &ParseFormatError{Path: path, Line: lineNo, Msg: "missing ':' separating vertex from successor list"}
	}

	name := strings.TrimSpace(line[:colon])
	if name == "" {
		return &ParseFormatError{Path: path, Line: lineNo, Msg: "empty vertex name"}
	}

	rest := strings.TrimSpace(line[colon+1:])
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return &ParseFormatError{Path: path, Line: lineNo, Msg: "successor list must be bracketed, e.g. [A,B]"}
	}
	inner := strings.TrimSpace(rest[1 : len(rest)-1])

	if err := m.Graph.AddVertex(name); err != nil {
		return &ParseFormatError{Path: path, Line: lineNo, Msg: err.Error()}
	}

	if isStartToken(name) {
		if m.HasStart() && m.Start != name {
			return &ParseFormatError{Path: path, Line: lineNo, Msg: "start vertex declared more than once"}
		}
		if !m.HasStart() {
			if err := m.SetStart(name); err != nil {
				return &ParseFormatError{Path: path, Line: lineNo, Msg: err.Error()}
			}
		}
	}

	if inner == "" {
		m.AddEnd(name)
		return nil
	}

	for _, tok := range strings.Split(inner, ",") {
		succ := strings.TrimSpace(tok)
		if succ == "" {
			return &ParseFormatError{Path: path, Line: lineNo, Msg: "empty successor token in list"}
		}
		if err := m.Graph.AddEdge(name, succ); err != nil {
			return &ParseFormatError{Path: path, Line: lineNo, Msg: err.Error()}
		}
		if isEndToken(succ) {
			m.AddEnd(succ)
		}
	}

	return nil
}

// parseConstraintLine parses a "Constraint[from - to - TYPE]" line.
func parseConstraintLine(path string, lineNo int, line string) (sut.Constraint, error) {
	if !strings.HasSuffix(line, "]") {
		return sut.Constraint{}, &ParseFormatError{Path: path, Line: lineNo, Msg: "constraint line missing closing ']'"}
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "Constraint["), "]")

	parts := strings.Split(inner, "-")
	if len(parts) != 3 {
		return sut.Constraint{}, &ParseFormatError{Path: path, Line: lineNo, Msg: "constraint must have exactly 3 '-'-separated fields"}
	}

	from := strings.TrimSpace(parts[0])
	to := strings.TrimSpace(parts[1])
	kindTok := strings.TrimSpace(parts[2])
	if from == "" || to == "" || kindTok == "" {
		return sut.Constraint{}, &ParseFormatError{Path: path, Line: lineNo, Msg: "constraint fields must not be empty"}
	}

	kind, ok := sut.ParseConstraintKind(kindTok)
	if !ok {
		return sut.Constraint{}, &ParseFormatError{Path: path, Line: lineNo, Msg: "unknown constraint type " + kindTok}
	}

	return sut.Constraint{From: from, To: to, Kind: kind}, nil
}

func isStartToken(name string) bool {
	return name == "START" || name == "Start"
}

func isEndToken(name string) bool {
	return strings.HasPrefix(name, "END") || strings.HasPrefix(name, "end")
}
