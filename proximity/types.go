package proximity

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/sprout/noise"
)

// Sentinel errors.
var (
	// ErrBadK indicates a neighbour count below one.
	ErrBadK = errors.New("proximity: k must be >= 1")

	// ErrEmptyPointSet indicates a PointSet without even the origin.
	ErrEmptyPointSet = errors.New("proximity: empty point set")
)

// DefaultK is the neighbour count of the reference plant.
const DefaultK = 5

// Distortion angle range.
const (
	minTwist = math.Pi / 10
	maxTwist = math.Pi / 6
)

// Candidate is one ranked neighbour of a point.
type Candidate struct {
	// Index is the neighbour's position in the PointSet.
	Index int

	// D1 is the Euclidean distance; it becomes the edge weight.
	D1 float64

	// D2 is the undistorted angular distance.
	D2 float64

	// D3 is the distorted angular distance used for ranking.
	D3 float64
}

// Option configures Build.
type Option func(*config)

type config struct {
	field   noise.Field
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.field == nil {
		cfg.field = noise.NewSimplex(0)
	}

	return cfg
}

// WithField sets the noise field driving the distortion. Panics on nil.
func WithField(f noise.Field) Option {
	if f == nil {
		panic("proximity: WithField(nil)")
	}
	return func(c *config) { c.field = f }
}

// WithNoiseSeed is shorthand for WithField(noise.NewSimplex(seed)).
func WithNoiseSeed(seed int64) Option {
	return WithField(noise.NewSimplex(seed))
}

// WithWorkers bounds the number of goroutines ranking points. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("proximity: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}
