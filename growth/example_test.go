package growth_test

import (
	"fmt"

	"github.com/katalvlaran/sprout/core"
	"github.com/katalvlaran/sprout/growth"
)

// ExampleGrow grows a two-level plant on three collinear points.
func ExampleGrow() {
	ps := core.NewPointSet([]core.Point{{X: 1}, {X: 2}})
	g := core.NewGraph(ps.Len())
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 1}} {
		_ = g.AddEdge(e[0], e[1], ps.Distance(e[0], e[1]))
	}
	g.Seal()

	segs, err := growth.Grow(ps, g,
		growth.WithSeed(1),
		growth.WithMaxDepth(2),
		growth.WithTrunkAttempts(1),
		growth.WithCandidates(2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range segs {
		if s.Depth > 0 {
			fmt.Printf("depth=%d parent=%d path=%v\n", s.Depth, s.Parent, s.Path.Nodes)
			continue
		}
		fmt.Printf("depth=%d parent=%d\n", s.Depth, s.Parent)
	}
	// Output:
	// depth=0 parent=-1
	// depth=1 parent=0 path=[1 2]
}
