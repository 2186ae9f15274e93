package potential_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pets/parameters"
	"github.com/katalvlaran/pets/potential"
)

// ExampleTruncatedShifted_At samples argon at the contact distance, the
// potential minimum and beyond the cutoff.
func ExampleTruncatedShifted_At() {
	p := parameters.NewPure(parameters.NewPureRecord(
		parameters.Identifier{Name: "argon"}, 39.948,
		parameters.PetsRecord{Sigma: 3.4050, EpsilonK: 119.8},
	))
	u := potential.NewTruncatedShifted(p)

	fmt.Printf("%.4f\n", u.At(0, 3.4050))
	fmt.Printf("%.4f\n", u.At(0, math.Pow(2, 1.0/6)*3.4050))
	fmt.Printf("%.4f\n", u.At(0, 10))
	// Output:
	// 1.9548
	// -117.8452
	// 0.0000
}
