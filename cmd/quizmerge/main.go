package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"quizmerge/internal/config"
	"quizmerge/internal/merger"
	"quizmerge/internal/report"
)

type Output struct {
	Success    bool   `json:"success"`
	OutputFile string `json:"output_file,omitempty"`
	RowsRead   int    `json:"rows_read"`
	Duplicates int    `json:"duplicates"`
	RowCount   int    `json:"row_count"`
	Error      string `json:"error,omitempty"`
	Duration   string `json:"duration"`
}

// All failure paths end with a console message and exit code 0; this is
// a single-operator batch tool, not something scripts gate on.
func main() {

	start := time.Now()

	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return
	}

	var out io.Writer = os.Stdout
	if cfg.JSON {
		out = io.Discard
	}
	console := report.NewConsole(out)

	console.Banner("xlsx dedup merge tool")

	created, err := merger.EnsureInputDir(cfg.InputDir)
	if err != nil {
		console.Error(err)
		finish(cfg, Output{Error: err.Error(), Duration: time.Since(start).String()})
		return
	}
	console.InputDirReady(cfg.InputDir, created)

	m := merger.NewDedupMerger()
	sum, err := m.MergeFiles(cfg, console)

	switch {
	case errors.Is(err, merger.ErrNoInputFiles):
		console.NoInputFiles(cfg.InputDir)
		finish(cfg, Output{Error: err.Error(), Duration: time.Since(start).String()})
		return
	case err != nil:
		console.Error(err)
		o := Output{Error: err.Error(), Duration: time.Since(start).String()}
		if sum != nil {
			o.RowsRead = sum.TotalRows
			o.Duplicates = sum.TotalDuplicates
			o.RowCount = sum.FinalRows
		}
		finish(cfg, o)
		return
	}

	console.Summary(sum)

	o := Output{
		Success:    true,
		RowsRead:   sum.TotalRows,
		Duplicates: sum.TotalDuplicates,
		RowCount:   sum.FinalRows,
		Duration:   time.Since(start).String(),
	}
	if sum.Export != nil {
		o.OutputFile = sum.Export.Path
	}
	finish(cfg, o)
}

func finish(cfg *config.Config, out Output) {
	if !cfg.JSON {
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encoding JSON output: %v", err)
	}
}
