package merger

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizmerge/internal/config"
)

// Required source columns. Files missing either one are skipped whole.
const (
	ColQuestion = "題目"
	ColAnswer   = "答案"
)

var requiredColumns = []string{ColQuestion, ColAnswer}

// FileResult is the structured outcome of processing one input file.
// Rendering it is the reporting layer's job.
type FileResult struct {
	Index int // 1-based position in the run
	Total int
	Path  string

	Rows    int // data rows in the file, header excluded
	Columns int // column count before projection

	MissingColumns []string // non-empty when required columns are absent
	FoundColumns   []string
	LoadErr        error // non-nil when the file could not be read

	Duplicates  int // new rows equal to a row merged from earlier files
	DatasetSize int // deduplicated dataset size after this file
}

// Skipped reports whether the file contributed nothing to the dataset.
func (r FileResult) Skipped() bool {
	return r.LoadErr != nil || len(r.MissingColumns) > 0
}

func (r FileResult) Name() string {
	return filepath.Base(r.Path)
}

// Summary aggregates the whole run.
type Summary struct {
	FilesFound      int
	FilesMerged     int
	FilesSkipped    int
	TotalRows       int // pre-projection rows across well-formed files
	TotalDuplicates int
	FinalRows       int
	Export          *ExportInfo // nil when nothing was exported
}

// Progress receives structured events as the run advances, keeping
// console output out of the pipeline itself.
type Progress interface {
	FilesFound(n int)
	FileProcessed(FileResult)
}

type FileMerger interface {
	MergeFiles(cfg *config.Config, progress Progress) (*Summary, error)
}

// DedupMerger folds every xlsx file in the input directory into a
// single deduplicated dataset and exports it as CSV.
type DedupMerger struct {
	dataset *Dataset
}

func NewDedupMerger() *DedupMerger {
	return &DedupMerger{dataset: NewDataset()}
}

// Dataset exposes the accumulated records, mainly for tests.
func (m *DedupMerger) Dataset() *Dataset {
	return m.dataset
}

// MergeFiles runs the full pipeline: discovery, per-file accumulation,
// CSV export. Discovery failures abort the run; per-file failures are
// reported through the FileResult and the run continues.
func (m *DedupMerger) MergeFiles(cfg *config.Config, progress Progress) (*Summary, error) {
	files, err := findInputFiles(cfg.InputDir)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		progress.FilesFound(len(files))
	}

	sum := &Summary{FilesFound: len(files)}
	for i, path := range files {
		res := m.processInputFile(path)
		res.Index = i + 1
		res.Total = len(files)

		if res.Skipped() {
			sum.FilesSkipped++
		} else {
			sum.FilesMerged++
			sum.TotalRows += res.Rows
			sum.TotalDuplicates += res.Duplicates
		}
		if progress != nil {
			progress.FileProcessed(res)
		}
	}
	sum.FinalRows = m.dataset.Len()

	if m.dataset.Len() > 0 {
		info, err := ExportCSV(cfg.OutputPath, m.dataset.Records())
		if err != nil {
			return sum, fmt.Errorf("exporting CSV: %w", err)
		}
		sum.Export = info
	}

	return sum, nil
}

// processInputFile loads one workbook, verifies the required columns,
// projects the rows onto them and merges the projection into the
// dataset. All failure modes end up in the returned FileResult.
func (m *DedupMerger) processInputFile(path string) FileResult {
	res := FileResult{Path: path}

	f, err := excelize.OpenFile(path)
	if err != nil {
		res.LoadErr = fmt.Errorf("opening %s: %w", filepath.Base(path), err)
		return res
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		res.LoadErr = fmt.Errorf("%s: workbook has no sheets", filepath.Base(path))
		return res
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		res.LoadErr = fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		return res
	}

	var header []string
	if len(rows) > 0 {
		header = make([]string, len(rows[0]))
		for i, h := range rows[0] {
			header[i] = strings.TrimSpace(h)
		}
		res.Rows = len(rows) - 1
		res.Columns = len(header)
	}

	qIdx, aIdx := columnIndex(header, ColQuestion), columnIndex(header, ColAnswer)
	if qIdx < 0 || aIdx < 0 {
		for _, col := range requiredColumns {
			if columnIndex(header, col) < 0 {
				res.MissingColumns = append(res.MissingColumns, col)
			}
		}
		res.FoundColumns = header
		return res
	}

	projected := make([]Record, 0, res.Rows)
	for _, row := range rows[1:] {
		projected = append(projected, Record{
			Question: cellAt(row, qIdx),
			Answer:   cellAt(row, aIdx),
		})
	}

	res.Duplicates = m.dataset.Merge(projected)
	res.DatasetSize = m.dataset.Len()
	return res
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cellAt tolerates short rows: excelize drops trailing empty cells.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
