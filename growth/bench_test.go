package growth_test

import (
	"testing"

	"github.com/katalvlaran/sprout/growth"
	"github.com/katalvlaran/sprout/noise"
	"github.com/katalvlaran/sprout/proximity"
)

// BenchmarkGrow measures a default plant over 400 points, graph excluded.
func BenchmarkGrow(b *testing.B) {
	ps := cloud(3, 400)
	g, err := proximity.Build(ps, proximity.DefaultK, proximity.WithField(noise.NewSimplex(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = growth.Grow(ps, g, growth.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
