// SPDX-License-Identifier: MIT

package na

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value is one cell of a sequence: a float64 observation or a missing marker.
//
// The zero Value is missing. Values are small and are passed by value.
type Value struct {
	f  float64 // observation; meaningful only when ok
	ok bool    // true ⇒ present
}

// Of returns a present Value holding f.
// f is stored as given, including NaN and ±Inf; use a Policy to decide
// whether a NaN coming from a host vector means "missing".
func Of(f float64) Value {
	return Value{f: f, ok: true}
}

// Missing returns the missing Value (same as the zero Value).
func Missing() Value {
	return Value{}
}

// Float64 returns the observation and true, or (0, false) when missing.
func (v Value) Float64() (float64, bool) {
	if !v.ok {
		return 0, false
	}

	return v.f, true
}

// IsMissing reports whether v carries no observation.
func (v Value) IsMissing() bool {
	return !v.ok
}

// Or returns the observation, or def when v is missing.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}

	return v.f
}

// Equal reports whether v and w are the same cell.
// Two missing cells are equal; two present NaNs are equal so that sequences
// holding NaN observations still compare equal to themselves.
func (v Value) Equal(w Value) bool {
	if v.ok != w.ok {
		return false
	}
	if !v.ok {
		return true
	}

	return v.f == w.f || (math.IsNaN(v.f) && math.IsNaN(w.f))
}

// String renders missing as "NA" and present values in the shortest
// representation that round-trips through strconv.ParseFloat.
func (v Value) String() string {
	if !v.ok {
		return missingToken
	}

	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	if !v.ok {
		return "na.Missing()"
	}

	return fmt.Sprintf("na.Of(%v)", v.f)
}

// MarshalJSON encodes missing as null and present values as JSON numbers.
// A present NaN or ±Inf yields ErrNonFinite.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return nil, fmt.Errorf("MarshalJSON %v: %w", v.f, ErrNonFinite)
	}

	return json.Marshal(v.f)
}

// UnmarshalJSON decodes null as missing and a JSON number as present.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Of(f)

	return nil
}

// Count returns how many cells of xs are present and how many are missing.
func Count(xs []Value) (present, missing int) {
	for _, x := range xs {
		if x.ok {
			present++
		} else {
			missing++
		}
	}

	return present, missing
}
