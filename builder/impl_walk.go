// SPDX-License-Identifier: MIT

package builder

// BuildWalk returns a length-n Gaussian random walk starting at 0:
//
//	y[0] = 0
//	y[i] = y[i-1] + A*N(0,1) + trend
//
// plus optional observation noise sigma*N(0,1) on top of each sample.
// Returns nil if n < 1.
func BuildWalk(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	level := unitZero
	for i := 0; i < n; i++ {
		if i > 0 {
			level += cfg.amplitude*rng.NormFloat64() + cfg.trendK
		}
		out[i] = level
		if cfg.noiseSigma > 0 {
			out[i] += cfg.noiseSigma * rng.NormFloat64()
		}
	}

	return out
}
