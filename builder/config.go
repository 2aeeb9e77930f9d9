// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil   (callers' seed decides)
//   • amplitude   = 1.0
//   • frequency   = 0.125 (period 8 samples)
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • triangular  = false (rectangular pulse)
//   • gapRate     = 0.0   (no gaps)
//   • gapRun      = 1     (single-cell gaps)
//   • leadingGap  = 0

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "derive from the seed argument".
	rng *rand.Rand

	// Signal shape.
	amplitude  float64 // >0
	frequency  float64 // >0, cycles/sample
	trendK     float64 // any real
	noiseSigma float64 // >=0
	triangular bool    // pulse shape: rectangular (false) or triangular

	// Gap layout.
	gapRate    float64 // probability in [0,1] that a gap starts at a cell
	gapRun     int     // >=1, maximum length of one gap
	leadingGap int     // >=0, cells at the head that are always missing
}

const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultGapRate    = 0.0
	defaultGapRun     = 1
	defaultLeadingGap = 0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		gapRate:    defaultGapRate,
		gapRun:     defaultGapRun,
		leadingGap: defaultLeadingGap,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
