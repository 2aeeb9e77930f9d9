// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/locf/na"
)

// DecodeJSON reads one JSON array of numbers and nulls.
// A top-level null, any non-array value, or anything but whitespace after
// the array is ErrMalformed.
func DecodeJSON(r io.Reader) ([]na.Value, error) {
	dec := json.NewDecoder(r)
	var xs []na.Value
	if err := dec.Decode(&xs); err != nil {
		return nil, fmt.Errorf("DecodeJSON: %w: %v", ErrMalformed, err)
	}
	if xs == nil {
		return nil, fmt.Errorf("DecodeJSON: %w: expected an array", ErrMalformed)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("DecodeJSON: %w: data after the array", ErrMalformed)
	}

	return xs, nil
}

// EncodeJSON writes xs as a JSON array followed by a newline.
// Present non-finite cells fail with na.ErrNonFinite.
func EncodeJSON(w io.Writer, xs []na.Value) error {
	if xs == nil {
		xs = []na.Value{}
	}
	if err := json.NewEncoder(w).Encode(xs); err != nil {
		return fmt.Errorf("EncodeJSON: %w", err)
	}

	return nil
}
