// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrMalformed indicates input that is not in the expected shape.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrNoHeader indicates a table without a header row.
	ErrNoHeader = errors.New("codec: table has no header row")

	// ErrUnknownColumn indicates a requested column name is not in the header.
	ErrUnknownColumn = errors.New("codec: unknown column")

	// ErrUnknownFormat indicates an unsupported file format name.
	ErrUnknownFormat = errors.New("codec: unknown format")
)
