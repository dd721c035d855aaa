package plant

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/dijkstra"
	"github.com/katalvlaran/sprout/growth"
	"github.com/katalvlaran/sprout/pointfield"
	"github.com/katalvlaran/sprout/proximity"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("plant: invalid config")

// Config describes a whole generation run.
type Config struct {
	// Seed drives jitter and target selection.
	Seed int64 `yaml:"seed"`

	// NoiseSeed drives the coherent noise shared by the point field and
	// the edge distortion.
	NoiseSeed int64 `yaml:"noise_seed"`

	Field  FieldConfig  `yaml:"field"`
	Graph  GraphConfig  `yaml:"graph"`
	Growth GrowthConfig `yaml:"growth"`
}

// FieldConfig configures the point field.
type FieldConfig struct {
	Resolution int     `yaml:"resolution"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Radius     float64 `yaml:"radius"`
	NoiseScale float64 `yaml:"noise_scale"`
	Threshold  float64 `yaml:"threshold"`
	Jitter     float64 `yaml:"jitter"`
}

// GraphConfig configures the proximity graph.
type GraphConfig struct {
	K int `yaml:"k"`

	// Workers bounds the ranking goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// GrowthConfig configures plant growth.
type GrowthConfig struct {
	MaxDepth      int     `yaml:"max_depth"`
	TrunkAttempts int     `yaml:"trunk_attempts"`
	Candidates    int     `yaml:"candidates"`
	Reach         float64 `yaml:"reach"`
	Samples       int     `yaml:"samples"`
	CacheSize     int     `yaml:"cache_size"`
	Curve         string  `yaml:"curve"`
}

// DefaultConfig returns the reference plant.
func DefaultConfig() Config {
	return Config{
		Seed:      1,
		NoiseSeed: 0,
		Field: FieldConfig{
			Resolution: pointfield.DefaultResolution,
			Min:        pointfield.DefaultMin,
			Max:        pointfield.DefaultMax,
			Radius:     pointfield.DefaultRadius,
			NoiseScale: pointfield.DefaultNoiseScale,
			Threshold:  pointfield.DefaultThreshold,
			Jitter:     pointfield.DefaultJitter,
		},
		Graph: GraphConfig{K: proximity.DefaultK},
		Growth: GrowthConfig{
			MaxDepth:      growth.DefaultMaxDepth,
			TrunkAttempts: growth.DefaultTrunkAttempts,
			Candidates:    growth.DefaultCandidates,
			Reach:         growth.DefaultReach,
			Samples:       growth.DefaultSamples,
			CacheSize:     dijkstra.DefaultCacheSize,
			Curve:         curve.Centripetal.String(),
		},
	}
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults. Unknown keys are rejected. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("ParseConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file. An empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	f, g, gr := c.Field, c.Graph, c.Growth
	switch {
	case f.Resolution < 1:
		return invalid("field.resolution", f.Resolution)
	case !finite(f.Min) || !finite(f.Max) || f.Min >= f.Max:
		return invalid("field.min/max", [2]float64{f.Min, f.Max})
	case !(f.Radius > 0):
		return invalid("field.radius", f.Radius)
	case !finite(f.NoiseScale):
		return invalid("field.noise_scale", f.NoiseScale)
	case math.IsNaN(f.Threshold):
		return invalid("field.threshold", f.Threshold)
	case !(f.Jitter >= 0):
		return invalid("field.jitter", f.Jitter)
	case g.K < 1:
		return invalid("graph.k", g.K)
	case g.Workers < 0:
		return invalid("graph.workers", g.Workers)
	case gr.MaxDepth < 1:
		return invalid("growth.max_depth", gr.MaxDepth)
	case gr.TrunkAttempts < 1:
		return invalid("growth.trunk_attempts", gr.TrunkAttempts)
	case gr.Candidates < 1:
		return invalid("growth.candidates", gr.Candidates)
	case !(gr.Reach > 0 && gr.Reach <= 1):
		return invalid("growth.reach", gr.Reach)
	case gr.Samples < 2:
		return invalid("growth.samples", gr.Samples)
	case gr.CacheSize < 1:
		return invalid("growth.cache_size", gr.CacheSize)
	}
	if _, err := curve.ParseType(gr.Curve); err != nil {
		return fmt.Errorf("Validate: growth.curve: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("Validate: %s=%v: %w", field, v, ErrInvalidConfig)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
