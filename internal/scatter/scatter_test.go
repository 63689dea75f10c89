package scatter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/rng"
)

func TestScatter_SmallRectangle(t *testing.T) {
	cfg := Config{Count: 5, MinDistance: 10, X: Range{0, 100}, Y: Range{0, 100}}
	pts, err := Scatter(rng.New(42), cfg)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	for _, p := range pts {
		assert.True(t, p.X >= 0 && p.X < 100, "x=%v", p.X)
		assert.True(t, p.Y >= 0 && p.Y < 100, "y=%v", p.Y)
	}
	assert.GreaterOrEqual(t, MinPairDistance(pts), 10.0)

	again, err := Scatter(rng.New(42), cfg)
	require.NoError(t, err)
	assert.Equal(t, pts, again)
}

func TestScatter_IslandLayout(t *testing.T) {
	cfg := Config{Count: 100, MinDistance: 20, X: Range{-200, 200}, Y: Range{-200, 200}}
	pts, err := Scatter(rng.FromString("islands"), cfg)
	require.NoError(t, err)
	require.Len(t, pts, 100)
	assert.GreaterOrEqual(t, MinPairDistance(pts), 20.0)
}

func TestScatter_ZeroDistanceAndZeroCount(t *testing.T) {
	pts, err := Scatter(rng.New(1), Config{Count: 50, X: Range{0, 1}, Y: Range{0, 1}})
	require.NoError(t, err)
	assert.Len(t, pts, 50)

	pts, err = Scatter(rng.New(1), Config{Count: 0, MinDistance: 5, X: Range{0, 1}, Y: Range{0, 1}})
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestScatter_LinearFallback(t *testing.T) {
	cfg := Config{Count: 30, MinDistance: 1e-3, X: Range{0, 1e4}, Y: Range{0, 1e4}}
	g := newGrid(cfg.X, cfg.Y, cfg.MinDistance)
	require.True(t, g.linear)
	pts, err := Scatter(rng.New(9), cfg)
	require.NoError(t, err)
	assert.Len(t, pts, 30)
	assert.GreaterOrEqual(t, MinPairDistance(pts), 1e-3)
}

func TestScatter_Infeasible(t *testing.T) {
	cfg := Config{Count: 10, MinDistance: 50, X: Range{0, 10}, Y: Range{0, 10}, MaxAttempts: 500}
	_, err := Scatter(rng.New(3), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, generr.ErrConfigurationInfeasible)
}

func TestScatter_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"NegativeCount", Config{Count: -1, X: Range{0, 1}, Y: Range{0, 1}}},
		{"NegativeDistance", Config{Count: 1, MinDistance: -1, X: Range{0, 1}, Y: Range{0, 1}}},
		{"InvertedX", Config{Count: 1, X: Range{1, 0}, Y: Range{0, 1}}},
		{"NegativeAttempts", Config{Count: 1, X: Range{0, 1}, Y: Range{0, 1}, MaxAttempts: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Scatter(rng.New(1), tc.cfg)
			assert.ErrorIs(t, err, generr.ErrInvalidConfiguration)
		})
	}
}

func TestWriteJSON_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Point{{X: -121.5, Y: 139.25}, {X: 3, Y: 0}}))
	want := "[\n" +
		"    {\n" +
		"        \"x\": -121.5,\n" +
		"        \"y\": 139.25\n" +
		"    },\n" +
		"    {\n" +
		"        \"x\": 3,\n" +
		"        \"y\": 0\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "positions.json")
	pts, err := Scatter(rng.New(5), Config{Count: 8, MinDistance: 3, X: Range{-20, 20}, Y: Range{-20, 20}})
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, pts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []Point
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, pts, got)
}
