// Package report renders merger results as console text. It holds no
// pipeline logic; everything it prints arrives as structured values.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizmerge/internal/merger"
)

const ruleWidth = 60

type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) rule() {
	fmt.Fprintln(c.w, strings.Repeat("=", ruleWidth))
}

func (c *Console) Banner(title string) {
	c.rule()
	fmt.Fprintln(c.w, title)
	c.rule()
}

func (c *Console) InputDirReady(dir string, created bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	if created {
		fmt.Fprintf(c.w, "created input folder: %s\n", abs)
	} else {
		fmt.Fprintf(c.w, "input folder: %s\n", abs)
	}
}

// FilesFound implements merger.Progress.
func (c *Console) FilesFound(n int) {
	fmt.Fprintf(c.w, "\nfound %d xlsx file(s)\n", n)
	c.rule()
}

// FileProcessed implements merger.Progress.
func (c *Console) FileProcessed(r merger.FileResult) {
	fmt.Fprintf(c.w, "\n[%d/%d] processing: %s\n", r.Index, r.Total, r.Name())

	if r.LoadErr != nil {
		fmt.Fprintf(c.w, "  - failed to read file, skipping: %v\n", r.LoadErr)
		return
	}

	fmt.Fprintf(c.w, "  - %d row(s), %d column(s)\n", r.Rows, r.Columns)

	if len(r.MissingColumns) > 0 {
		fmt.Fprintf(c.w, "  - missing required column(s) %v, skipping file\n", r.MissingColumns)
		fmt.Fprintf(c.w, "    columns found: %v\n", r.FoundColumns)
		return
	}

	fmt.Fprintf(c.w, "  - kept 2 columns: %s, %s\n", merger.ColQuestion, merger.ColAnswer)
	fmt.Fprintf(c.w, "  - %d row(s) duplicate previously merged data\n", r.Duplicates)
	fmt.Fprintf(c.w, "  - accumulated total: %d row(s)\n", r.DatasetSize)
}

// NoInputFiles prints the empty-directory warning with instructions.
func (c *Console) NoInputFiles(dir string) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	fmt.Fprintf(c.w, "warning: no xlsx files found in %q\n", dir)
	fmt.Fprintf(c.w, "put the source files into %s and run again\n", abs)
}

// Error prints a fatal pipeline error.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.w, "error: %v\n", err)
}

// Summary prints the final statistics and export confirmation.
func (c *Console) Summary(s *merger.Summary) {
	fmt.Fprintln(c.w)
	c.rule()
	fmt.Fprintln(c.w, "merge complete:")
	fmt.Fprintf(c.w, "  - rows read:        %d\n", s.TotalRows)
	fmt.Fprintf(c.w, "  - duplicates found: %d\n", s.TotalDuplicates)
	fmt.Fprintf(c.w, "  - rows after dedup: %d\n", s.FinalRows)
	if s.FilesSkipped > 0 {
		fmt.Fprintf(c.w, "  - files skipped:    %d of %d\n", s.FilesSkipped, s.FilesFound)
	}
	c.rule()

	if s.Export == nil {
		fmt.Fprintln(c.w, "\nnothing to export")
		return
	}
	fmt.Fprintf(c.w, "\nexported CSV: %s\n", s.Export.Path)
	fmt.Fprintf(c.w, "  size: %.2f KB\n", float64(s.Export.Size)/1024)
	fmt.Fprintf(c.w, "  columns: %v\n", s.Export.Columns)
	fmt.Fprintf(c.w, "  rows: %d\n", s.Export.Rows)
}
