// Command cpt drives the CPT generators against one SUT text file or a
// directory of them, printing the generated test paths and optionally
// exporting metrics, DOT/PNG graph snapshots, and a CSV report.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/cptgraph/cpt/generator"
	"github.com/cptgraph/cpt/metrics"
	"github.com/cptgraph/cpt/report"
	"github.com/cptgraph/cpt/sut"
	"github.com/cptgraph/cpt/suttext"
	"github.com/cptgraph/cpt/testpath"
	"github.com/cptgraph/cpt/visualize"
)

func main() {
	file := flag.String("file", "", "single SUT text file to process")
	dir := flag.String("dir", "", "directory of *.txt SUT files to process in batch")
	logPath := flag.String("log", "", "tee log output (stderr) to this file in addition to the console; stdout, including -showpath tables, is not copied")
	showPath := flag.Bool("showpath", false, "print the generated paths as a table")
	toDOT := flag.String("todot", "", "export the SUT graph as Graphviz DOT to this path")
	toPNG := flag.String("topng", "", "export the SUT graph as a PNG image to this path")
	csvPath := flag.String("csv", "", "write per-case metrics as CSV to this path (batch mode only)")
	flag.Parse()

	logger, closeLog := newLogger(*logPath)
	defer closeLog()

	if *file == "" && *dir == "" {
		logger.Println("one of -file or -dir is required")
		os.Exit(2)
	}

	if *file != "" {
		os.Exit(runSingle(logger, *file, *showPath, *toDOT, *toPNG))
	}

	runBatch(logger, *dir, *showPath, *csvPath)
}

func newLogger(logPath string) (*log.Logger, func()) {
	if logPath == "" {
		return log.New(os.Stderr, "", log.LstdFlags), func() {}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.New(os.Stderr, "", log.LstdFlags).Printf("cannot open log file %s: %v", logPath, err)
		return log.New(os.Stderr, "", log.LstdFlags), func() {}
	}

	w := io.MultiWriter(os.Stderr, f)

	return log.New(w, "", log.LstdFlags), func() { f.Close() }
}

// runSingle handles -file mode: exit 1 on load failure, 2 on parse/
// validation failure, 0 otherwise.
func runSingle(logger *log.Logger, path string, showPath bool, toDOT, toPNG string) int {
	m, err := suttext.FileLoad(path)
	if err != nil {
		if _, ok := err.(*suttext.FileLoadError); ok {
			logger.Printf("load failed: %v", err)
			return 1
		}
		logger.Printf("parse failed: %v", err)
		return 2
	}

	if toDOT != "" {
		if err := exportDOT(toDOT, m); err != nil {
			logger.Printf("dot export failed: %v", err)
		}
	}
	if toPNG != "" {
		if err := visualize.WritePNG(toPNG, m); err != nil {
			logger.Printf("png export failed: %v", err)
		}
	}

	for _, gen := range allGenerators() {
		paths := gen.gen.Generate(m)
		r := metrics.Compute(m, paths)
		logger.Printf("%s: valid=%d size=%d edgeCoverage=%.3f", gen.tag, r.Valid, r.Size, r.EdgeCoverage)
		if showPath {
			printPathTable(gen.tag, paths)
		}
	}

	return 0
}

// runBatch handles -dir mode: a failure on one file is logged and the file
// skipped; other files continue.
func runBatch(logger *log.Logger, dir string, showPath bool, csvPath string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Printf("cannot read directory %s: %v", dir, err)
		return
	}

	var csvWriter *report.Writer
	var csvFile *os.File
	if csvPath != "" {
		csvFile, err = os.Create(csvPath)
		if err != nil {
			logger.Printf("cannot create CSV file %s: %v", csvPath, err)
		} else {
			defer csvFile.Close()
			csvWriter = report.NewWriter(csvFile)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		m, err := suttext.FileLoad(path)
		if err != nil {
			logger.Printf("skipping %s: %v", path, err)
			continue
		}

		for _, gen := range allGenerators() {
			start := time.Now()
			paths := gen.gen.Generate(m)
			elapsed := time.Since(start)
			r := metrics.Compute(m, paths)

			if showPath {
				printPathTable(fmt.Sprintf("%s/%s", entry.Name(), gen.tag), paths)
			}
			if csvWriter != nil {
				if err := csvWriter.WriteRow(report.Row{
					SUTFile:   entry.Name(),
					Algorithm: gen.tag,
					Report:    r,
					Elapsed:   elapsed,
				}); err != nil {
					logger.Printf("csv write failed for %s: %v", path, err)
				}
			}
		}
	}

	if csvWriter != nil {
		if err := csvWriter.Flush(); err != nil {
			logger.Printf("csv flush failed: %v", err)
		}
	}
}

type namedGenerator struct {
	tag string
	gen generator.Generator
}

func allGenerators() []namedGenerator {
	return []namedGenerator{
		{"Edge", generator.Edge{}},
		{"Filter", generator.Filter{}},
		{"CPC", generator.CPC{}},
	}
}

func exportDOT(path string, m *sut.SUT) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return visualize.WriteDOT(f, m)
}

// printPathTable prints one row per path, width-aware: it truncates each
// row (ending it with "...") to the terminal width when stdout is a TTY,
// falling back to 80 columns otherwise.
func printPathTable(tag string, paths []testpath.Path) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Printf("== %s (%d paths) ==\n", tag, len(paths))
	for i, p := range paths {
		line := fmt.Sprintf("%3d. [%d] %v", i+1, p.Len(), []string(p))
		if len(line) > width {
			line = line[:width-3] + "..."
		}
		fmt.Println(line)
	}
}
