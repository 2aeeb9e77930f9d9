// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const float64Size = 8

// ReadFloat64s reads little-endian float64 values until EOF.
// A trailing partial value is ErrMalformed.
func ReadFloat64s(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadFloat64s: %w", err)
	}
	if len(data)%float64Size != 0 {
		return nil, fmt.Errorf("ReadFloat64s: %w: %d trailing bytes", ErrMalformed, len(data)%float64Size)
	}

	xs := make([]float64, len(data)/float64Size)
	for i := range xs {
		xs[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*float64Size:]))
	}

	return xs, nil
}

// WriteFloat64s writes xs as little-endian float64 values, preserving NaN
// payloads bit for bit.
func WriteFloat64s(w io.Writer, xs []float64) error {
	bw := bufio.NewWriter(w)
	var buf [float64Size]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("WriteFloat64s: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteFloat64s: %w", err)
	}

	return nil
}
