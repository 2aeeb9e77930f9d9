// SPDX-License-Identifier: MIT

package fill

import (
	"gonum.org/v1/gonum/floats"
)

// Float64s applies LOCF to a raw float64 vector whose missing cells are
// encoded as NaN bit patterns (see na.Policy, selected with WithPolicy).
//
// Present cells are copied bit-for-bit, carried cells get the carried
// value's exact bits, and missing cells with nothing to carry are written as
// policy.Sentinel(). Under na.RCompat this reproduces R's behaviour exactly,
// including rewriting a leading NaN as NA_real_.
//
// A vector without any NaN cannot contain a missing cell under any policy,
// so after one floats.HasNaN pass it is copied without per-cell policy checks.
//
// Complexity: O(n) time, one allocation.
func Float64s(xs []float64, opts ...Option) []float64 {
	o := gatherOptions(opts...)
	out := make([]float64, len(xs))
	if !floats.HasNaN(xs) {
		copy(out, xs)

		return out
	}

	p := o.policy
	carry := p.Sentinel()
	for i, f := range xs {
		if p.IsMissing(f) {
			out[i] = carry

			continue
		}
		out[i] = f
		carry = f
	}

	return out
}
