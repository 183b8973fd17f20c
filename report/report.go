package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/cptgraph/cpt/metrics"
)

// Header lists the CSV columns: a leading SUT-file column for traceability
// across rows of the same algorithm block, followed by the schema's named
// columns (algorithm tag, then one column per metrics.Report field, then
// elapsed wall time).
var Header = []string{
	"sut_file",
	"algorithm",
	"valid(T)",
	"size",
	"lT",
	"u_edges(T)",
	"avg(|t|)",
	"s(T)",
	"eff_edges(T)",
	"cov_cp_positive(T)",
	"cov_cp_once(T)",
	"cov_cp_negative(T)",
	"cov_cp_only-once(T)",
	"cov_edges(T)",
	"time[ms]",
}

// Row is one data row: the result of running one generator against one SUT
// file.
type Row struct {
	SUTFile   string
	Algorithm string // "Edge", "Filter", or "CPC"
	Report    metrics.Report
	Elapsed   time.Duration
}

// Writer writes Rows to a CSV stream, emitting Header once on the first
// call to WriteRow.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w in a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteRow appends r as a CSV data row, writing the header first if this is
// the first row written.
func (w *Writer) WriteRow(r Row) error {
	if !w.wroteHeader {
		if err := w.csv.Write(Header); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
		w.wroteHeader = true
	}

	rec := []string{
		r.SUTFile,
		r.Algorithm,
		fmt.Sprintf("%d", r.Report.Valid),
		fmt.Sprintf("%d", r.Report.Size),
		fmt.Sprintf("%d", r.Report.TotalEdges),
		fmt.Sprintf("%d", r.Report.UniqueEdges),
		fmt.Sprintf("%.6f", r.Report.AvgLen),
		fmt.Sprintf("%.6f", r.Report.StdLen),
		fmt.Sprintf("%.6f", r.Report.EdgeEfficiency),
		fmt.Sprintf("%.6f", r.Report.CovPositive),
		fmt.Sprintf("%.6f", r.Report.CovOnce),
		fmt.Sprintf("%.6f", r.Report.CovNegative),
		fmt.Sprintf("%.6f", r.Report.CovMaxOnce),
		fmt.Sprintf("%.6f", r.Report.EdgeCoverage),
		fmt.Sprintf("%d", r.Elapsed.Milliseconds()),
	}

	if err := w.csv.Write(rec); err != nil {
		return fmt.Errorf("report: write row: %w", err)
	}

	return nil
}

// Flush flushes any buffered CSV data and returns the first error
// encountered, if any.
func (w *Writer) Flush() error {
	w.csv.Flush()

	return w.csv.Error()
}
