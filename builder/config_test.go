// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaults pins the documented zero-option configuration.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no RNG unless requested")
	assert.Equal(t, defaultAmplitude, cfg.amplitude)
	assert.Equal(t, defaultFrequency, cfg.frequency)
	assert.Equal(t, defaultTrend, cfg.trendK)
	assert.Equal(t, defaultNoiseSigma, cfg.noiseSigma)
	assert.Equal(t, defaultGapRate, cfg.gapRate)
	assert.Equal(t, defaultGapRun, cfg.gapRun)
	assert.Equal(t, defaultLeadingGap, cfg.leadingGap)
}

// TestOptionsLastWins verifies options apply in order.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithGapRate(0.1), WithGapRate(0.3), WithGapRun(2), WithLeadingGap(4))
	assert.Equal(t, 0.3, cfg.gapRate)
	assert.Equal(t, 2, cfg.gapRun)
	assert.Equal(t, 4, cfg.leadingGap)
}

// TestRNGOptions verifies that a shared RNG takes priority over the seed argument.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	shared := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithRand(shared))
	assert.Same(t, shared, rngFrom(cfg, 99))

	// Seeded configs are reproducible.
	a := rngFrom(newBuilderConfig(WithSeed(5)), 0).Int63()
	b := rngFrom(newBuilderConfig(WithSeed(5)), 0).Int63()
	assert.Equal(t, a, b)

	// Without an RNG option the seed argument decides.
	c := rngFrom(newBuilderConfig(), 5).Int63()
	assert.Equal(t, a, c)
}

// TestOptionPanics verifies constructors reject nonsensical values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithAmplitude(0) })
	assert.Panics(t, func() { WithFrequency(-1) })
	assert.Panics(t, func() { WithNoise(-0.1) })
	assert.Panics(t, func() { WithGapRate(1.5) })
	assert.Panics(t, func() { WithGapRun(0) })
	assert.Panics(t, func() { WithLeadingGap(-1) })
	assert.NotPanics(t, func() { WithTrend(-3) })
}
