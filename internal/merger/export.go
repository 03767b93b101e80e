package merger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// ErrNothingToExport reports that the dataset ended up empty, so no
// output file was written.
var ErrNothingToExport = errors.New("nothing to export")

// ExportInfo describes a written output file.
type ExportInfo struct {
	Path    string   `json:"path"`
	Size    int64    `json:"size_bytes"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// ExportCSV writes records to path as comma-separated text, one header
// row then one row per record. The writer is wrapped in a UTF-8 BOM
// encoder so spreadsheet tools pick up the encoding.
func ExportCSV(path string, records []Record) (*ExportInfo, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(unicode.UTF8BOM.NewEncoder().Writer(f))
	if err := w.Write(requiredColumns); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Question, r.Answer}); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return &ExportInfo{
		Path:    abs,
		Size:    st.Size(),
		Columns: append([]string(nil), requiredColumns...),
		Rows:    len(records),
	}, nil
}
