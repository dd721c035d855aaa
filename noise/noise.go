package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic coherent noise source.
type Field interface {
	// Eval2 returns the noise value at (x, y), roughly in [-1, 1].
	Eval2(x, y float64) float64

	// Eval3 returns the noise value at (x, y, z), roughly in [-1, 1].
	Eval3(x, y, z float64) float64
}

// Simplex is an OpenSimplex field bound to a seed.
type Simplex struct {
	seed  int64
	noise opensimplex.Noise
}

// NewSimplex returns the OpenSimplex field for seed.
// Complexity: O(1) amortized (permutation tables are built once).
func NewSimplex(seed int64) *Simplex {
	return &Simplex{seed: seed, noise: opensimplex.New(seed)}
}

// Seed returns the seed the field was built with.
func (s *Simplex) Seed() int64 { return s.seed }

// Eval2 implements Field.
func (s *Simplex) Eval2(x, y float64) float64 { return s.noise.Eval2(x, y) }

// Eval3 implements Field.
func (s *Simplex) Eval3(x, y, z float64) float64 { return s.noise.Eval3(x, y, z) }

// Func adapts a pair of plain functions to Field. A nil member evaluates to 0.
type Func struct {
	F2 func(x, y float64) float64
	F3 func(x, y, z float64) float64
}

// Eval2 implements Field.
func (f Func) Eval2(x, y float64) float64 {
	if f.F2 == nil {
		return 0
	}
	return f.F2(x, y)
}

// Eval3 implements Field.
func (f Func) Eval3(x, y, z float64) float64 {
	if f.F3 == nil {
		return 0
	}
	return f.F3(x, y, z)
}

// Constant is a Field returning the same value everywhere.
type Constant float64

// Eval2 implements Field.
func (c Constant) Eval2(_, _ float64) float64 { return float64(c) }

// Eval3 implements Field.
func (c Constant) Eval3(_, _, _ float64) float64 { return float64(c) }

var (
	_ Field = (*Simplex)(nil)
	_ Field = Func{}
	_ Field = Constant(0)
)
