package playback_test

import (
	"fmt"

	"github.com/katalvlaran/sprout/growth"
	"github.com/katalvlaran/sprout/playback"
)

// ExampleTimeline walks the first level of a one-segment plant.
func ExampleTimeline() {
	tl := playback.NewTimeline(playback.WithFramesPerCurve(3))
	segs := []growth.Segment{line(0)}
	for tl.Frame() <= 3 {
		p := tl.Plan(segs)
		fmt.Printf("frame=%d depth=%d fraction=%.2f tubes=%d tips=%d\n",
			p.Frame, p.Depth, p.Fraction, len(p.Tubes), len(p.Tips))
		tl.Advance()
	}
	// Output:
	// frame=0 depth=-1 fraction=1.00 tubes=0 tips=0
	// frame=1 depth=0 fraction=0.33 tubes=1 tips=0
	// frame=2 depth=0 fraction=0.67 tubes=1 tips=0
	// frame=3 depth=0 fraction=1.00 tubes=1 tips=1
}
