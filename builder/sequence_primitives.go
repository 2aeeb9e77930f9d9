// SPDX-License-Identifier: MIT
// Package: builder
//
// sequence_primitives.go - small named constants shared by the generators.

package builder

const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

const defDuty = 0.5 // rectangular duty cycle in [0,1]
