package proximity_test

import (
	"fmt"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/proximity"
)

// ExampleBuild links a four-point set with two neighbours per point.
func ExampleBuild() {
	ps := core.NewPointSet([]core.Point{{X: 1}, {Y: 2}, {Z: 3}})
	g, err := proximity.Build(ps, 2, proximity.WithField(noise.Constant(0.5)))
	if err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.Neighbors(core.OriginIndex)
	fmt.Println(g.Size(), nbrs[0].To, nbrs[1].To)
	// Output: 8 1 2
}
