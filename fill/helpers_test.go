package fill_test

import (
	"math"

	"github.com/katalvlaran/locf/na"
)

// M marks a missing cell in seq literals.
var M = math.NaN()

// seq builds a sequence from float literals; M (NaN) becomes missing.
func seq(xs ...float64) []na.Value {
	return na.FromFloat64s(xs, na.NaNMissing)
}
