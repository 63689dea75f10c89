package gerstner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"tidegen.dev/internal/rng"
	"tidegen.dev/internal/waves"
)

func singleWave() waves.Set {
	return waves.Set{Components: []waves.Component{
		{Steepness: 0.5, Wavelength: 2 * math.Pi, Velocity: 1, Direction: r2.Vec{X: 1}},
	}}
}

func TestDisplace_SingleWave(t *testing.T) {
	set := singleWave()
	// k = 1, a = 0.5; at x = 0, t = 0 the phase is 0.
	got := Displace(set, r3.Vec{}, 0)
	assert.InDelta(t, 0.5, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)

	got = Displace(set, r3.Vec{X: math.Pi / 2}, 0)
	assert.InDelta(t, math.Pi/2, got.X, 1e-12)
	assert.InDelta(t, 0.5, got.Y, 1e-12)
}

func TestDisplace_EmptySetIsIdentity(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	assert.Equal(t, p, Displace(waves.Set{}, p, 4))
	assert.Equal(t, r3.Vec{Y: 1}, Normal(waves.Set{}, p, 4))
}

func TestNormal_UnitAndUpward(t *testing.T) {
	set, err := waves.Generate(rng.New(8), waves.Config{
		Count:      12,
		Steepness:  waves.Range{Min: 0.01, Max: 0.4},
		Wavelength: waves.Range{Min: 0.1, Max: 20},
		Velocity:   waves.Range{Min: 0.5, Max: 5},
		Deviation:  waves.DefaultDeviation(12),
		Sweep:      waves.Descending,
	})
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		p := r3.Vec{X: float64(i) * 0.37, Z: float64(i) * -0.21}
		n := Normal(set, p, float64(i)*0.1)
		require.InDelta(t, 1, r3.Norm(n), 1e-9)
		require.GreaterOrEqual(t, n.Y, 0.0)
	}
}

func TestHeightAt_MatchesDisplacedImage(t *testing.T) {
	set := waves.Set{Components: []waves.Component{
		{Steepness: 0.2, Wavelength: 8, Velocity: 1.5, Direction: r2.Unit(r2.Vec{X: 1, Y: 1})},
	}}
	h := HeightAt(set, 1.3, -0.4, 0.7)
	assert.LessOrEqual(t, math.Abs(h), 0.2*8/(2*math.Pi)+1e-9)

	flat := HeightAt(waves.Set{}, 5, 5, 0)
	assert.Equal(t, 0.0, flat)
}
