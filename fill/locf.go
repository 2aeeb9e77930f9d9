// SPDX-License-Identifier: MIT

package fill

import "github.com/katalvlaran/locf/na"

// Stats tallies one LOCF pass.
//
// Invariant: Len == Present + Filled + Leading.
type Stats struct {
	Len     int `json:"len"`     // number of cells
	Present int `json:"present"` // observations copied through
	Filled  int `json:"filled"`  // missing cells that received a carried value
	Leading int `json:"leading"` // missing cells before the first observation
}

// LOCF returns a new sequence in which every missing cell of xs holds the
// nearest preceding observation, or stays missing when there is none.
//
// Algorithm:
//  1. carry = missing.
//  2. For i = 0..n-1: if xs[i] is missing, out[i] = carry;
//     otherwise out[i] = xs[i] and carry = xs[i].
//
// Guarantees:
//   - len(out) == len(xs); nil or empty input gives an empty, non-nil slice.
//   - Present cells are copied unchanged to the same index.
//   - xs is not modified.
//
// Complexity: O(n) time, one allocation of n cells.
func LOCF(xs []na.Value) []na.Value {
	out := make([]na.Value, len(xs))
	carryForward(out, xs, na.Missing())

	return out
}

// LOCFInPlace applies the LOCF rule to xs itself and returns how many cells
// received a carried value. Use it only on buffers the caller owns.
func LOCFInPlace(xs []na.Value) int {
	return carryForward(xs, xs, na.Missing())
}

// LOCFWithStats is LOCF that also reports what the pass did.
func LOCFWithStats(xs []na.Value) ([]na.Value, Stats) {
	out := make([]na.Value, len(xs))
	filled := carryForward(out, xs, na.Missing())

	present, missing := na.Count(xs)
	st := Stats{
		Len:     len(xs),
		Present: present,
		Filled:  filled,
		Leading: missing - filled,
	}

	return out, st
}

// Tally reports what LOCF would do to xs without producing the output.
// Useful next to Parallel, which returns only the filled sequence.
func Tally(xs []na.Value) Stats {
	st := Stats{Len: len(xs), Leading: len(xs)}
	for i, x := range xs {
		if x.IsMissing() {
			continue
		}
		if st.Present == 0 {
			st.Leading = i
		}
		st.Present++
	}
	st.Filled = st.Len - st.Present - st.Leading

	return st
}

// Combine is the carry operator: r when r is present, else l.
// It is associative with na.Missing() as identity, which is what lets
// Parallel split the pass into independent chunks.
func Combine(l, r na.Value) na.Value {
	if r.IsMissing() {
		return l
	}

	return r
}

// carryForward writes the LOCF image of src, seeded with carry, into dst and
// returns the number of missing cells that received a value.
// dst and src must have equal length; they may be the same slice.
func carryForward(dst, src []na.Value, carry na.Value) int {
	filled := 0
	for i, x := range src {
		if x.IsMissing() {
			dst[i] = carry
			if !carry.IsMissing() {
				filled++
			}

			continue
		}
		dst[i] = x
		carry = x
	}

	return filled
}

// lastObservation returns the right-most present cell of xs, or missing.
// Equivalent to folding xs with Combine, but stops at the first hit from the end.
func lastObservation(xs []na.Value) na.Value {
	for i := len(xs) - 1; i >= 0; i-- {
		if !xs[i].IsMissing() {
			return xs[i]
		}
	}

	return na.Missing()
}
