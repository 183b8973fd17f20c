// Package suttext loads a sut.SUT from a line-oriented text format:
// vertex:[successors] declarations, a START line, bracket-empty or
// END-prefixed successors marking end vertices, and
// Constraint[from - to - TYPE] lines.
//
// Parsing uses a bufio.Scanner loop that tracks line numbers so every
// reported error names the offending line.
package suttext
