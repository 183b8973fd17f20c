// Package report writes metrics.Report rows as CSV for batch-mode runs:
// one algorithm tag, one row per SUT file.
//
// encoding/csv is used directly rather than a third-party CSV library —
// the schema has no quoting, embedded-newline, or streaming-decode needs
// beyond what the standard writer already covers.
package report
