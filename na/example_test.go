package na_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/locf/na"
)

// ExampleParseAll shows text tokens becoming tagged cells.
func ExampleParseAll() {
	vs, err := na.ParseAll([]string{"1.5", "NA", "", "4"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(vs)
	// Output:
	// [1.5 NA NA 4]
}

// ExamplePolicy_Sentinel contrasts the plain NaN policy with R's NA_real_.
func ExamplePolicy_Sentinel() {
	fmt.Printf("%#x\n", math.Float64bits(na.RCompat.Sentinel()))
	fmt.Println(na.IsRNA(na.NaNMissing.Sentinel()))
	// Output:
	// 0x7ff00000000007a2
	// false
}
