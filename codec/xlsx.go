// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/locf/na"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// ReadXLSX loads one sheet of a workbook as a Table. An empty sheet name
// selects the first sheet. Cells are read as stored values, not as their
// number-formatted display text.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ReadXLSX: sheet %q: %w", sheet, ErrNoHeader)
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// WriteXLSX writes t to a new single-sheet workbook at path. Cells that
// parse as present numbers are stored as numbers; everything else as text.
func WriteXLSX(path, sheet string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		f.SetSheetName(defaultSheet, sheet)
	}

	if err := writeRow(f, sheet, 1, t.Header, false); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row, true); err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	return nil
}

// writeRow stores one row starting at column A of the 1-based row index.
func writeRow(f *excelize.File, sheet string, row int, cells []string, numeric bool) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
		if !numeric {
			continue
		}
		if v, err := na.Parse(c); err == nil {
			if n, ok := v.Float64(); ok {
				values[i] = n
			}
		}
	}

	return f.SetSheetRow(sheet, cell, &values)
}
