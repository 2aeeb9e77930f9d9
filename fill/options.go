// SPDX-License-Identifier: MIT
// Package: fill
//
// options.go - functional configuration for Float64s and Parallel.
//
// Contract:
//   - Option constructors validate and panic on nonsensical values
//     (programmer error). The fill functions themselves never panic.
//   - Defaults are resolved per call; no package state is mutated.

package fill

import (
	"runtime"

	"github.com/katalvlaran/locf/na"
)

const (
	// DefaultMinChunk is the smallest chunk Parallel hands to a worker.
	// Inputs shorter than two chunks run sequentially.
	DefaultMinChunk = 1 << 14

	// DefaultPolicy is the float64 missing-value policy used by Float64s.
	DefaultPolicy = na.NaNMissing
)

const (
	panicWorkersInvalid  = "fill: WithWorkers: n must be >= 1"
	panicMinChunkInvalid = "fill: WithMinChunk: n must be >= 1"
	panicPolicyInvalid   = "fill: WithPolicy: unknown policy"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; callers use
// the WithX constructors.
type Options struct {
	workers  int       // goroutines for Parallel; default GOMAXPROCS
	minChunk int       // DefaultMinChunk
	policy   na.Policy // DefaultPolicy
}

// WithWorkers caps the number of chunks Parallel processes concurrently.
// n == 1 forces the sequential pass.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinChunk sets the smallest chunk size Parallel will create.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic(panicMinChunkInvalid)
	}

	return func(o *Options) { o.minChunk = n }
}

// WithPolicy selects how Float64s recognises and writes missing cells.
func WithPolicy(p na.Policy) Option {
	if !p.Valid() {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// gatherOptions resolves defaults then applies opts in order. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  runtime.GOMAXPROCS(0),
		minChunk: DefaultMinChunk,
		policy:   DefaultPolicy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
