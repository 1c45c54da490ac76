// Package export writes the final listing table to a timestamped Excel file.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/job-scout/internal/types"
)

// SheetName is the worksheet holding the listings.
const SheetName = "Job Listings"

// Columns is the canonical column order of the exported spreadsheet.
var Columns = []string{
	"Source",
	"Job Title",
	"Company Name",
	"Location",
	"Date Posted",
	"Experience",
	"Salary Range",
	"Skills",
	"Job Description",
	"Application Link",
}

// WriteError reports a failure to produce the output file. It is fatal for
// the run: there are no partial or retry semantics for the export step.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write spreadsheet %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Writer exports tables into a directory, one file per run.
type Writer struct {
	// Dir is the output directory, created on demand.
	Dir string
	// now is swappable in tests.
	now func() time.Time
}

// NewWriter returns a Writer for the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Write saves the table as job_listings_<timestamp>.xlsx and returns the
// file's path. A zero-row table still produces a file with the header row.
func (w *Writer) Write(table types.Table) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", &WriteError{Path: w.Dir, Cause: err}
	}

	name := fmt.Sprintf("job_listings_%s.xlsx", w.now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(w.Dir, name)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}

	for col, header := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", &WriteError{Path: path, Cause: err}
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return "", &WriteError{Path: path, Cause: err}
		}
	}

	for row, l := range table {
		values := []string{
			l.Source, l.Title, l.Company, l.Location, l.DatePosted,
			l.Experience, l.SalaryRange, l.Skills, l.Description, l.URL,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", &WriteError{Path: path, Cause: err}
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return "", &WriteError{Path: path, Cause: err}
			}
		}
	}

	// Widen the text-heavy columns so the file opens readable.
	_ = f.SetColWidth(SheetName, "B", "D", 28)
	_ = f.SetColWidth(SheetName, "I", "J", 48)

	if err := f.SaveAs(path); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}
	return path, nil
}

// Prune deletes exported spreadsheets in dir older than maxAge and returns
// how many files were removed. A missing directory is not an error.
func Prune(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}
