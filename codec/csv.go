// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV loads a header row and all records. Rows may have differing
// numbers of fields.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadCSV: %w", ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %v", ErrMalformed, err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %v", ErrMalformed, err)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// WriteCSV writes the header and rows of t.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
