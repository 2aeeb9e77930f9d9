// SPDX-License-Identifier: MIT

// Package fill implements last observation carried forward (LOCF) imputation.
//
// 🚀 What is LOCF?
//
//	Walk a sequence left to right and remember the most recent observation.
//	Every missing cell takes that remembered value; cells before the first
//	observation stay missing because nothing precedes them.
//
//	  in:  [NA, 2, NA, NA, 5]
//	  out: [NA, 2,  2,  2, 5]
//
// ✨ Entry points:
//   - LOCF          — pure, allocates the result; the input is never touched.
//   - LOCFInPlace   — same rule over a caller-owned buffer.
//   - LOCFWithStats — LOCF plus a tally of present/filled/leading cells.
//   - Float64s      — raw []float64 vectors under an na.Policy (NaN or R NA).
//   - Parallel      — segmented prefix-scan form for very large inputs.
//
// ⚙️ Scan form:
//
//	The carry is a fold with the associative operator Combine(l, r) = r if r
//	is present, else l, with Missing as identity. Parallel reduces chunks to
//	their last observation, exclusive-scans those tails, then fills every
//	chunk from its incoming carry. The output is identical to LOCF.
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N) for the result, O(1) working state (O(workers) in Parallel)
package fill
