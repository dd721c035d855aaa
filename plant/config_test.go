package plant_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sprout/curve"
	"github.com/katalvlaran/sprout/plant"
)

// TestDefaultConfig_Valid checks the reference values.
func TestDefaultConfig_Valid(t *testing.T) {
	cfg := plant.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 50, cfg.Field.Resolution)
	require.Equal(t, 0.35, cfg.Field.Threshold)
	require.Equal(t, 5, cfg.Graph.K)
	require.Equal(t, 5, cfg.Growth.MaxDepth)
	require.Equal(t, 3, cfg.Growth.TrunkAttempts)
	require.Equal(t, 3, cfg.Growth.Candidates)
	require.Equal(t, 0.3, cfg.Growth.Reach)
	require.Equal(t, "centripetal", cfg.Growth.Curve)
}

// TestParseConfig overlays YAML on the defaults.
func TestParseConfig(t *testing.T) {
	cfg, err := plant.ParseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, plant.DefaultConfig(), cfg)

	cfg, err = plant.ParseConfig([]byte(`
seed: 7
noise_seed: 3
field:
  resolution: 20
  threshold: 0.2
graph:
  k: 4
  workers: 2
growth:
  max_depth: 3
  curve: uniform
`))
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, int64(3), cfg.NoiseSeed)
	require.Equal(t, 20, cfg.Field.Resolution)
	require.Equal(t, 0.2, cfg.Field.Threshold)
	require.Equal(t, 2.0, cfg.Field.Radius)
	require.Equal(t, 4, cfg.Graph.K)
	require.Equal(t, 2, cfg.Graph.Workers)
	require.Equal(t, 3, cfg.Growth.MaxDepth)
	require.Equal(t, 3, cfg.Growth.Candidates)
	require.Equal(t, "uniform", cfg.Growth.Curve)

	_, err = plant.ParseConfig([]byte("growth:\n  depth: 3\n"))
	require.Error(t, err)

	_, err = plant.ParseConfig([]byte("graph:\n  k: 0\n"))
	require.ErrorIs(t, err, plant.ErrInvalidConfig)
}

// TestValidate walks every rule.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*plant.Config)
	}{
		{"Resolution", func(c *plant.Config) { c.Field.Resolution = 0 }},
		{"Bounds", func(c *plant.Config) { c.Field.Min, c.Field.Max = 1, 1 }},
		{"BoundsNaN", func(c *plant.Config) { c.Field.Max = math.NaN() }},
		{"Radius", func(c *plant.Config) { c.Field.Radius = 0 }},
		{"NoiseScale", func(c *plant.Config) { c.Field.NoiseScale = math.Inf(1) }},
		{"Threshold", func(c *plant.Config) { c.Field.Threshold = math.NaN() }},
		{"Jitter", func(c *plant.Config) { c.Field.Jitter = -0.1 }},
		{"K", func(c *plant.Config) { c.Graph.K = 0 }},
		{"Workers", func(c *plant.Config) { c.Graph.Workers = -1 }},
		{"MaxDepth", func(c *plant.Config) { c.Growth.MaxDepth = 0 }},
		{"TrunkAttempts", func(c *plant.Config) { c.Growth.TrunkAttempts = 0 }},
		{"Candidates", func(c *plant.Config) { c.Growth.Candidates = 0 }},
		{"Reach", func(c *plant.Config) { c.Growth.Reach = 1.2 }},
		{"Samples", func(c *plant.Config) { c.Growth.Samples = 1 }},
		{"CacheSize", func(c *plant.Config) { c.Growth.CacheSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := plant.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), plant.ErrInvalidConfig)
		})
	}

	cfg := plant.DefaultConfig()
	cfg.Growth.Curve = "bezier"
	err := cfg.Validate()
	require.ErrorIs(t, err, plant.ErrInvalidConfig)
	require.ErrorIs(t, err, curve.ErrUnknownType)
}

// TestLoadConfig reads a file from disk.
func TestLoadConfig(t *testing.T) {
	cfg, err := plant.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, plant.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\n"), 0o600))
	cfg, err = plant.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)

	_, err = plant.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
