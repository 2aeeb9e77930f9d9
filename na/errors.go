// SPDX-License-Identifier: MIT

package na

import "errors"

var (
	// ErrSyntax is returned by Parse when a token is neither a missing marker
	// nor a float64 literal.
	ErrSyntax = errors.New("na: invalid numeric token")

	// ErrNonFinite is returned when a present NaN or ±Inf has to be encoded
	// in a format that cannot represent it (JSON).
	ErrNonFinite = errors.New("na: non-finite value cannot be encoded")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("na: unknown missing-value policy")
)
