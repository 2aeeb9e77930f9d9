// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_pulse.go — deterministic rectangular/triangular pulse generator.
//
// Contract:
//   • BuildPulse(n, seed, opts...) returns a slice of length n (or nil on invalid input).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.

package builder

import (
	"math"
)

// seqPulseParams holds all resolved knobs for the pulse generator.
type seqPulseParams struct {
	amp        float64 // amplitude > 0
	f0         float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // rectangular(false) or triangular(true)
	sigma      float64 // Gaussian noise sigma ≥ 0
	trend      float64 // linear trend increment per sample
}

// extractPulseParams maps builderConfig → seqPulseParams.
func extractPulseParams(cfg builderConfig) seqPulseParams {
	return seqPulseParams{
		amp:        cfg.amplitude,
		f0:         cfg.frequency,
		duty:       defDuty,
		triangular: cfg.triangular,
		sigma:      cfg.noiseSigma,
		trend:      cfg.trendK,
	}
}

// BuildPulse returns a length-n pulse sequence with optional trend and noise.
//
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//
// Returns nil if n < 1.
func BuildPulse(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractPulseParams(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): frac = (i*f0) mod 1.
		frac = math.Mod(float64(i)*p.f0, unitOne)

		if p.triangular {
			base = p.amp * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		base += p.trend * float64(i)
		if p.sigma > 0 {
			base += p.sigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}
