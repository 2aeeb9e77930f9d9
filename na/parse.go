// SPDX-License-Identifier: MIT

package na

import (
	"fmt"
	"strconv"
	"strings"
)

// missingToken is how a missing Value is rendered.
const missingToken = "NA"

// missingTokens are accepted as missing by Parse (compared after trimming).
// Any spelling of NaN is missing as well: hosts that export NA through
// generic float formatting print it as NaN.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"na":   {},
	"N/A":  {},
	"null": {},
	"NULL": {},
}

// Parse converts a textual cell into a Value.
//
// Leading and trailing spaces are ignored. Missing markers ("", "NA", "na",
// "N/A", "null", "NULL", any case of "NaN") yield a missing Value; anything else must be
// a float64 literal accepted by strconv.ParseFloat, otherwise the error wraps
// ErrSyntax.
func Parse(s string) (Value, error) {
	tok := strings.TrimSpace(s)
	if _, ok := missingTokens[tok]; ok || strings.EqualFold(tok, "nan") {
		return Missing(), nil
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Missing(), fmt.Errorf("Parse %q: %w", s, ErrSyntax)
	}

	return Of(f), nil
}

// ParseAll parses every token of ss, stopping at the first failure.
// The error names the failing index.
func ParseAll(ss []string) ([]Value, error) {
	out := make([]Value, len(ss))
	for i, s := range ss {
		v, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// FormatAll renders every Value with Value.String.
func FormatAll(xs []Value) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}
