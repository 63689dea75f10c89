package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/waves"
)

func TestLoad_GeneratorsYAML(t *testing.T) {
	cfg, err := Load("../../configs/generators.yaml")
	require.NoError(t, err)
	assert.Equal(t, "poo", cfg.Seed)
	assert.Equal(t, ModeBiased, cfg.Waves.Mode)

	wc, err := cfg.WaveConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, wc.Count)
	assert.Equal(t, waves.Descending, wc.Sweep)
	assert.InDelta(t, 0.025, wc.Deviation, 1e-15)
	assert.Nil(t, wc.MainDirection)

	sc, err := cfg.ScatterConfig()
	require.NoError(t, err)
	assert.Equal(t, 100, sc.Count)
	assert.Equal(t, -200.0, sc.X.Min)
	assert.Equal(t, "./positions.json", cfg.Scatter.Out)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().Waves.Count, cfg.Waves.Count)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParse_OverridesKeepDefaults(t *testing.T) {
	raw := []byte(`
seed: "abc"
waves:
  count: 3
  sweep: ASC
  deviation: 0
  main_direction: [0, 2]
scatter:
  count: 5
`)
	cfg := Defaults()
	require.NoError(t, Parse(raw, &cfg))
	assert.Equal(t, "asc", cfg.Waves.Sweep)
	assert.Equal(t, 0.4, cfg.Waves.Steepness.Max)

	wc, err := cfg.WaveConfig()
	require.NoError(t, err)
	assert.Equal(t, waves.Ascending, wc.Sweep)
	assert.Equal(t, 0.0, wc.Deviation)
	require.NotNil(t, wc.MainDirection)
	assert.Equal(t, r2.Vec{X: 0, Y: 2}, *wc.MainDirection)

	set, err := waves.Generate(cfg.Source(), wc)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestParse_SchemaRejectsUnknownKeys(t *testing.T) {
	cfg := Defaults()
	err := Parse([]byte("waves:\n  cuont: 3\n"), &cfg)
	require.Error(t, err)
}

func TestParse_SemanticValidation(t *testing.T) {
	cases := map[string]string{
		"EqualSteepness":  "waves:\n  steepness: {min: 0.2, max: 0.2}\n",
		"InvertedScatter": "scatter:\n  x: [10, -10]\n",
		"InvertedSeabed":  "seabed:\n  min_y: 0\n  max_y: -1\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			err := Parse([]byte(raw), &cfg)
			assert.ErrorIs(t, err, generr.ErrInvalidConfiguration)
		})
	}
}

func TestDecayConfig(t *testing.T) {
	cfg := Defaults()
	dc, err := cfg.DecayConfig()
	require.NoError(t, err)
	assert.Equal(t, 35, dc.Count)
	assert.Equal(t, r2.Vec{X: 1}, dc.StartDirection)
	assert.Equal(t, 0.81, dc.MaxVelocityDecay)
}

func TestSeabedConfig_SeedFollowsRunSeed(t *testing.T) {
	a := Defaults()
	a.Seed = "one"
	b := Defaults()
	b.Seed = "two"
	assert.NotEqual(t, a.SeabedConfig().Seed, b.SeabedConfig().Seed)
	assert.Equal(t, a.SeabedConfig(), a.SeabedConfig())
}

func TestLoadOrDefaults(t *testing.T) {
	cfg, found, err := LoadOrDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, ModeBiased, cfg.Waves.Mode)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("waves:\n  count: 0\n"), 0o644))
	_, _, err = LoadOrDefaults(bad)
	require.Error(t, err)

	_, found, err = LoadOrDefaults("../../configs/generators.yaml")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestEnsureSeed(t *testing.T) {
	cfg := Defaults()
	now := time.Unix(0, 1234)
	assert.True(t, cfg.EnsureSeed(now))
	assert.Equal(t, "1234", cfg.Seed)
	assert.False(t, cfg.EnsureSeed(now.Add(time.Second)))
	assert.Equal(t, "1234", cfg.Seed)
}
