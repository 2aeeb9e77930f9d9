// SPDX-License-Identifier: MIT
// Package: na
//
// policy.go - mapping between raw float64 vectors and Value.
//
// Contract:
//   - NaNMissing: every NaN is missing; an uncarried missing cell is math.NaN().
//   - RCompat:    every NaN is missing; an uncarried missing cell is R's NA_real_.
//   - RNAOnly:    only the NA_real_ payload is missing; other NaNs are observations.
//
// R stores NA_real_ as a quiet NaN whose low 32-bit word is 1954. is.na() on a
// double is true for any NaN, which is why RCompat treats every NaN as missing
// yet still writes the exact NA bits back.

package na

import (
	"fmt"
	"math"
	"strings"
)

// rNABits is the IEEE-754 bit pattern of R's NA_real_.
const rNABits uint64 = 0x7FF00000000007A2

// rNALowWord is the payload R_IsNA checks in the low 32 bits.
const rNALowWord uint32 = 1954

// RNA returns R's NA_real_ as a float64.
func RNA() float64 {
	return math.Float64frombits(rNABits)
}

// IsRNA reports whether f carries the NA_real_ payload (NaN with low word 1954).
func IsRNA(f float64) bool {
	if !math.IsNaN(f) {
		return false
	}

	return uint32(math.Float64bits(f)) == rNALowWord
}

// Policy selects how a float64 vector encodes missing cells.
type Policy uint8

const (
	// NaNMissing treats every NaN as missing and writes math.NaN() for
	// missing cells that have nothing to carry.
	NaNMissing Policy = iota

	// RCompat treats every NaN as missing and writes NA_real_ for missing
	// cells that have nothing to carry. Bit-compatible with R vectors.
	RCompat

	// RNAOnly treats only NA_real_ as missing. Other NaNs are observations.
	RNAOnly

	policyCount // sentinel for Valid
)

var policyNames = [...]string{
	NaNMissing: "nan",
	RCompat:    "r",
	RNAOnly:    "rna",
}

// Valid reports whether p is one of the declared policies.
func (p Policy) Valid() bool {
	return p < policyCount
}

// String returns the short name accepted by ParsePolicy.
func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}

	return policyNames[p]
}

// ParsePolicy maps "nan", "r" or "rna" (case-insensitive) to a Policy.
// The empty string selects NaNMissing.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return NaNMissing, nil
	}
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}

	return NaNMissing, fmt.Errorf("ParsePolicy %q: %w", s, ErrUnknownPolicy)
}

// IsMissing reports whether the raw value f is missing under p.
func (p Policy) IsMissing(f float64) bool {
	if p == RNAOnly {
		return IsRNA(f)
	}

	return math.IsNaN(f)
}

// Sentinel is the float64 written for a missing cell under p.
func (p Policy) Sentinel() float64 {
	if p == NaNMissing {
		return math.NaN()
	}

	return RNA()
}

// FromFloat64s converts a raw vector into Values under p.
// Complexity: O(n) time, one allocation.
func FromFloat64s(xs []float64, p Policy) []Value {
	out := make([]Value, len(xs))
	for i, f := range xs {
		if !p.IsMissing(f) {
			out[i] = Of(f)
		}
	}

	return out
}

// ToFloat64s converts Values into a raw vector, writing p.Sentinel() for
// missing cells.
func ToFloat64s(xs []Value, p Policy) []float64 {
	out := make([]float64, len(xs))
	sentinel := p.Sentinel()
	for i, x := range xs {
		if x.ok {
			out[i] = x.f
		} else {
			out[i] = sentinel
		}
	}

	return out
}
