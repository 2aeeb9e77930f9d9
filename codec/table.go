// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/locf/fill"
	"github.com/katalvlaran/locf/na"
)

// Table is a header row plus records of text cells. Rows may be ragged;
// a cell past the end of a row reads as missing.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnReport describes what FillColumns did to one column.
type ColumnReport struct {
	Name  string
	Stats fill.Stats
}

// Column returns the index of the first header cell equal to name.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
}

// Values parses column col of every row.
func (t *Table) Values(col int) ([]na.Value, error) {
	out := make([]na.Value, len(t.Rows))
	for i, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		v, err := na.Parse(row[col])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// SetValues writes xs into column col, padding short rows with empty cells.
// len(xs) must equal len(t.Rows).
func (t *Table) SetValues(col int, xs []na.Value) {
	for i := range t.Rows {
		for len(t.Rows[i]) <= col {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i][col] = xs[i].String()
	}
}

// FillColumns applies LOCF to the named columns, in the given order.
// With no names, every column whose cells all parse as numbers or missing
// markers is filled, and text columns are left alone.
func (t *Table) FillColumns(names ...string) ([]ColumnReport, error) {
	if len(t.Header) == 0 {
		return nil, ErrNoHeader
	}

	var cols []int
	if len(names) == 0 {
		for i := range t.Header {
			if _, err := t.Values(i); err == nil {
				cols = append(cols, i)
			}
		}
	} else {
		for _, name := range names {
			i, err := t.Column(name)
			if err != nil {
				return nil, fmt.Errorf("FillColumns: %w", err)
			}
			cols = append(cols, i)
		}
	}

	reports := make([]ColumnReport, 0, len(cols))
	for _, i := range cols {
		xs, err := t.Values(i)
		if err != nil {
			return nil, fmt.Errorf("FillColumns: column %q: %w", t.Header[i], err)
		}
		out, st := fill.LOCFWithStats(xs)
		t.SetValues(i, out)
		reports = append(reports, ColumnReport{Name: t.Header[i], Stats: st})
	}

	return reports, nil
}
