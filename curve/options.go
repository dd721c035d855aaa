package curve

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownType is returned by ParseType for an unrecognized name.
var ErrUnknownType = errors.New("curve: unknown curve type")

// Type selects the knot parameterization.
type Type int

const (
	// Centripetal spaces knots by the square root of the chord length.
	Centripetal Type = iota

	// Chordal spaces knots by the chord length.
	Chordal

	// Uniform spaces knots evenly and scales tangents by the tension.
	Uniform
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Centripetal:
		return "centripetal"
	case Chordal:
		return "chordal"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType returns the Type named by s, as printed by Type.String.
func ParseType(s string) (Type, error) {
	for t := Centripetal; t <= Uniform; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("ParseType(%q): %w", s, ErrUnknownType)
}

// Defaults.
const (
	DefaultTension   = 0.5
	DefaultDivisions = 200
)

// Option configures New.
type Option func(*config)

type config struct {
	typ       Type
	tension   float64
	divisions int
}

// WithType sets the parameterization. Panics on an unknown Type.
func WithType(t Type) Option {
	if t < Centripetal || t > Uniform {
		panic(fmt.Sprintf("curve: WithType(%d)", int(t)))
	}
	return func(c *config) { c.typ = t }
}

// WithTension sets the tangent scale of Uniform curves. Panics on NaN or Inf.
func WithTension(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("curve: WithTension(non-finite)")
	}
	return func(c *config) { c.tension = v }
}

// WithDivisions sets the arc-length table resolution. Panics if n < 1.
func WithDivisions(n int) Option {
	if n < 1 {
		panic("curve: WithDivisions(n<1)")
	}
	return func(c *config) { c.divisions = n }
}
