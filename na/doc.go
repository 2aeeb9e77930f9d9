// SPDX-License-Identifier: MIT

// Package na defines the missing-value model used across locf.
//
// What lives here?
//
//	• Value  — a tagged float64 cell: present (with a number) or missing.
//	• Policy — how raw float64 vectors encode "missing" (any NaN, or the
//	  R NA_real_ payload), and what an uncarried missing cell is written as.
//	• Parse  — textual tokens ("NA", "", "null", ...) to Value and back.
//
// Why a tagged cell instead of NaN?
//
//	A NaN produced by arithmetic (0/0, Inf-Inf) is not the same thing as an
//	observation that was never recorded. Value keeps the two apart; Policy is
//	the single place where the float64 bit patterns of a host environment are
//	mapped in and out.
//
// The zero Value is missing, so make([]na.Value, n) is an all-missing sequence.
//
//	xs := []na.Value{na.Of(1), na.Missing(), na.Of(3)}
//	fmt.Println(xs) // [1 NA 3]
package na
