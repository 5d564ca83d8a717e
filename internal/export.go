package internal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportExtensions lists the supported export file extensions.
var ExportExtensions = []string{".csv", ".xlsx"}

// ExportTable writes the result table to path; the format is chosen by the
// file extension.
func ExportTable(t *Table, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return exportCSV(t, path)
	case ".xlsx":
		return exportXLSX(t, path)
	default:
		return fmt.Errorf("unsupported export format %q (available: %v)", ext, ExportExtensions)
	}
}

// exportCSV matches the desktop app's CSV exports: semicolon separated,
// decimal comma.
func exportCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.DisplayRows() {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing export file: %w", err)
	}
	return nil
}

func exportXLSX(t *Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for rowIdx, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return fmt.Errorf("row cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, row.YearMonth); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		for colIdx, col := range t.ValueColumns() {
			cell, err := excelize.CoordinatesToCellName(colIdx+2, rowIdx+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			// Numbers stay numeric in the sheet; display formatting is a
			// terminal concern.
			if err := f.SetCellValue(sheet, cell, row.Values[col]); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving export file: %w", err)
	}
	return nil
}
