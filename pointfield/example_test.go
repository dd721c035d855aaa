package pointfield_test

import (
	"fmt"

	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/pointfield"
)

// ExampleBuild samples a 3×3×3 grid with a field that accepts everything.
func ExampleBuild() {
	ps, err := pointfield.Build(
		pointfield.WithResolution(3),
		pointfield.WithBounds(-1, 1),
		pointfield.WithRadius(1.2),
		pointfield.WithJitter(0),
		pointfield.WithField(noise.Constant(1)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ps.Len(), ps.Origin())
	// Output: 8 {0 0 0}
}
