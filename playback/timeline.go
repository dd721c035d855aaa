package playback

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/sprout/growth"
)

// Defaults of the reference animation.
const (
	DefaultFramesPerCurve = 60
	DefaultLevels         = growth.DefaultMaxDepth
)

// Option configures a Timeline.
type Option func(*Timeline)

// WithFramesPerCurve sets how many frames one depth level takes. Panics if n < 1.
func WithFramesPerCurve(n int) Option {
	if n < 1 {
		panic("playback: WithFramesPerCurve(n<1)")
	}
	return func(t *Timeline) { t.framesPerCurve = n }
}

// WithLevels sets the number of depth levels drawn. It scales tube radii
// and selects the leaf level (Levels-1). Panics if n < 1.
func WithLevels(n int) Option {
	if n < 1 {
		panic("playback: WithLevels(n<1)")
	}
	return func(t *Timeline) { t.levels = n }
}

// WithRand sets the source of random leaf tilts. Panics on nil.
// Without it leaves are not tilted.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("playback: WithRand(nil)")
	}
	return func(t *Timeline) { t.rng = r }
}

// WithSeed seeds a fresh source of leaf tilts.
func WithSeed(seed int64) Option {
	return func(t *Timeline) { t.rng = rand.New(rand.NewSource(seed)) }
}

// Timeline is the animation clock. Not safe for concurrent use.
type Timeline struct {
	framesPerCurve int
	levels         int
	rng            *rand.Rand
	frame          int
}

// NewTimeline returns a Timeline at frame 0.
func NewTimeline(opts ...Option) *Timeline {
	t := &Timeline{framesPerCurve: DefaultFramesPerCurve, levels: DefaultLevels}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Stage describes what a frame draws.
type Stage struct {
	Frame int

	// Depth is the level being drawn, -1 before the first.
	Depth int

	// Fraction of each segment drawn, in (0, 1].
	Fraction float64

	// Steps is the number of 1/FramesPerCurve increments behind Fraction.
	Steps int

	// Final is true when Fraction is 1: the level is complete.
	Final bool
}

// Frame returns the current frame.
func (t *Timeline) Frame() int { return t.frame }

// LastFrame returns the frame at which the counter stops.
func (t *Timeline) LastFrame() int { return t.framesPerCurve * (t.levels + 1) }

// Done reports whether the counter reached LastFrame.
func (t *Timeline) Done() bool { return t.frame >= t.LastFrame() }

// Advance moves to the next frame, stopping at LastFrame.
func (t *Timeline) Advance() {
	if t.frame < t.LastFrame() {
		t.frame++
	}
}

// Reset rewinds to frame 0.
func (t *Timeline) Reset() { t.frame = 0 }

// Stage returns the stage of the current frame.
func (t *Timeline) Stage() Stage { return StageAt(t.frame, t.framesPerCurve) }

// StageAt returns the stage of frame for the given frames per level.
//
// The level advances on frames whose remainder is 1, and a remainder of 0
// completes the level (fraction 1).
func StageAt(frame, framesPerCurve int) Stage {
	if framesPerCurve < 1 {
		framesPerCurve = 1
	}
	if frame < 0 {
		frame = 0
	}
	s := Stage{Frame: frame, Depth: -1}
	if frame > 0 {
		s.Depth = (frame - 1) / framesPerCurve
	}
	s.Steps = frame % framesPerCurve
	if s.Steps == 0 {
		s.Steps = framesPerCurve
	}
	s.Fraction = float64(s.Steps) / float64(framesPerCurve)
	s.Final = s.Steps == framesPerCurve

	return s
}

// Play drives the timeline from its current frame, calling render once per
// tick until Done, ctx ends or render fails. The last frame is rendered.
func (t *Timeline) Play(ctx context.Context, segs []growth.Segment, interval time.Duration, render func(Plan) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := render(t.Plan(segs)); err != nil {
			return err
		}
		if t.Done() {
			return nil
		}
		t.Advance()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
