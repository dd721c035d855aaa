package proximity_test

import (
	"testing"

	"github.com/katalvlaran/sprout/proximity"
)

// BenchmarkBuild measures graph construction over 1000 points.
func BenchmarkBuild(b *testing.B) {
	ps := cloud(1, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := proximity.Build(ps, proximity.DefaultK, proximity.WithNoiseSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
