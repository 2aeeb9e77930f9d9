// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_gaps.go — deterministic gap injection.
//
// Layout:
//   • The first leadingGap cells are always missing.
//   • Afterwards, at each cell a gap starts with probability gapRate and
//     lasts uniformly 1..gapRun cells (truncated at the end).
//   • All other cells copy the source value.

package builder

import "github.com/katalvlaran/locf/na"

// Punch converts xs into Values and drops cells per the gap options.
// Returns an empty, non-nil slice for empty xs.
func Punch(xs []float64, seed int64, opts ...BuilderOption) []na.Value {
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]na.Value, len(xs))
	remaining := 0 // cells left in the current gap
	for i, f := range xs {
		if i < cfg.leadingGap {
			continue
		}
		if remaining == 0 && cfg.gapRate > 0 && rng.Float64() < cfg.gapRate {
			remaining = 1 + rng.Intn(cfg.gapRun)
		}
		if remaining > 0 {
			remaining--

			continue
		}
		out[i] = na.Of(f)
	}

	return out
}

// BuildGappedWalk is BuildWalk followed by Punch with the same options.
// The seed drives the walk; the gap layout uses seed+1 unless a shared RNG
// was supplied with WithRand/WithSeed. Returns nil if n < 1.
func BuildGappedWalk(n int, seed int64, opts ...BuilderOption) []na.Value {
	walk := BuildWalk(n, seed, opts...)
	if walk == nil {
		return nil
	}

	return Punch(walk, seed+1, opts...)
}
