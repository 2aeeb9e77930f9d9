// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared across generator calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the signal amplitude A (>0): pulse height or walk step scale.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 || math.IsNaN(A) || math.IsInf(A, 0) {
		panic("builder: WithAmplitude(A<=0)")
	}

	return func(c *builderConfig) { c.amplitude = A }
}

// WithFrequency sets the pulse base frequency f0 (>0) in cycles per sample.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 || math.IsNaN(f0) || math.IsInf(f0, 0) {
		panic("builder: WithFrequency(f0<=0)")
	}

	return func(c *builderConfig) { c.frequency = f0 }
}

// WithTrend adds k*i to sample i. Any finite k is accepted.
func WithTrend(k float64) BuilderOption {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("builder: WithTrend(non-finite)")
	}

	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise sets Gaussian noise sigma (>=0); 0 means noiseless.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithTriangular switches BuildPulse from a rectangular to a triangular wave.
func WithTriangular() BuilderOption {
	return func(c *builderConfig) { c.triangular = true }
}

// WithGapRate sets the probability p ∈ [0,1] that a gap starts at any cell.
func WithGapRate(p float64) BuilderOption {
	if !(p >= 0 && p <= 1) {
		panic("builder: WithGapRate(p∉[0,1])")
	}

	return func(c *builderConfig) { c.gapRate = p }
}

// WithGapRun sets the maximum gap length (>=1). Each gap's length is drawn
// uniformly from [1, run].
func WithGapRun(run int) BuilderOption {
	if run < 1 {
		panic("builder: WithGapRun(run<1)")
	}

	return func(c *builderConfig) { c.gapRun = run }
}

// WithLeadingGap forces the first k cells (>=0) to be missing.
func WithLeadingGap(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithLeadingGap(k<0)")
	}

	return func(c *builderConfig) { c.leadingGap = k }
}
