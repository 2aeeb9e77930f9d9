// SPDX-License-Identifier: MIT

// Package builder generates deterministic float64 series and punches gaps
// into them, producing []na.Value fixtures for tests, benchmarks and demos.
//
// The package offers:
//
//   - Signal generators (return []float64, nil on invalid input):
//     – BuildPulse: rectangular/triangular pulse with trend and noise.
//     – BuildWalk:  Gaussian random walk, a stand-in for sensor readings.
//   - Gap injection (returns []na.Value):
//     – Punch:           drop cells from an existing series.
//     – BuildGappedWalk: BuildWalk followed by Punch.
//   - Functional options (BuilderOption), resolved by newBuilderConfig:
//     – WithSeed / WithRand:         RNG selection (shared stream wins over seed).
//     – WithAmplitude / WithFrequency / WithTrend / WithNoise /
//       WithTriangular:              signal shape.
//     – WithGapRate / WithGapRun / WithLeadingGap:             gap layout.
//
// Guarantees:
//
//   - Determinism: equal (n, seed, options) give identical output.
//   - Option constructors panic on nonsensical values; generators never panic.
//   - O(n) time and one output allocation per call.
package builder
