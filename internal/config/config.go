package config

import (
	"flag"
	"path/filepath"
)

// Defaults mirror the fixed names the tool has always used; flags exist
// so callers can redirect input/output without editing code.
const (
	DefaultInputDir   = "xlsx_files"
	DefaultOutputPath = "merged_output.csv"
)

type Config struct {
	InputDir   string
	OutputPath string
	JSON       bool // emit the final summary as JSON instead of text
}

// ParseFlags registers the tool's flags on fs and parses args.
// Pass flag.CommandLine and os.Args[1:] from main.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	fs.StringVar(&cfg.InputDir, "dir", DefaultInputDir, "folder containing the source XLSX files")
	fs.StringVar(&cfg.OutputPath, "out", DefaultOutputPath, "resulting CSV file")
	fs.BoolVar(&cfg.JSON, "json", false, "print the run summary as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.InputDir = filepath.Clean(cfg.InputDir)
	cfg.OutputPath = filepath.Clean(cfg.OutputPath)

	return cfg, nil
}
