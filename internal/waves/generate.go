package waves

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/rng"
	"tidegen.dev/internal/sampling"
)

// Mix factor bounds: a center of 0 takes the random heading, a center of 1 keeps
// almost all of the main direction.
const (
	mixRare   = 1.0
	mixCommon = 0.00001
)

// Config drives Generate.
type Config struct {
	Count      int
	Steepness  Range
	Wavelength Range
	Velocity   Range
	Deviation  float64
	Sweep      Sweep

	// MainDirection biases every heading toward a dominant swell. Nil draws free headings.
	MainDirection *r2.Vec
	// NormalizeDirections rescales free headings to unit length. Ignored with MainDirection.
	NormalizeDirections bool
}

// DefaultDeviation is the per-set deviation used when none is configured.
func DefaultDeviation(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 0.5 / float64(n)
}

func (c Config) Validate() error {
	if c.Count < 1 {
		return generr.Invalid("count %d must be >= 1", c.Count)
	}
	if err := c.Steepness.validate("steepness"); err != nil {
		return err
	}
	if err := c.Wavelength.validate("wavelength"); err != nil {
		return err
	}
	if err := c.Velocity.validate("velocity"); err != nil {
		return err
	}
	if !finite(c.Deviation) || c.Deviation < 0 {
		return generr.Invalid("deviation %v must be finite and >= 0", c.Deviation)
	}
	if c.Sweep != Ascending && c.Sweep != Descending {
		return generr.Invalid("unknown sweep %d", int(c.Sweep))
	}
	if c.MainDirection != nil {
		d := *c.MainDirection
		if !finite(d.X) || !finite(d.Y) || r2.Norm(d) == 0 {
			return generr.Invalid("main direction %v must be a finite non-zero vector", d)
		}
	}
	return nil
}

// Generate builds c.Count components. Steepness and wavelength grow with the bias center,
// velocity shrinks with it.
func Generate(src *rand.Rand, c Config) (Set, error) {
	if err := c.Validate(); err != nil {
		return Set{}, err
	}
	var main r2.Vec
	if c.MainDirection != nil {
		main = r2.Unit(*c.MainDirection)
	}

	centers := Centers(c.Count, c.Sweep)
	set := Set{Components: make([]Component, 0, c.Count)}
	for _, center := range centers {
		comp := Component{
			Steepness:  sampling.Sample(src, c.Steepness.Min, c.Steepness.Max, c.Deviation, center),
			Wavelength: sampling.Sample(src, c.Wavelength.Min, c.Wavelength.Max, c.Deviation, center),
			Velocity:   sampling.Sample(src, c.Velocity.Max, c.Velocity.Min, c.Deviation, center),
		}
		if c.MainDirection != nil {
			comp.Direction = mixedDirection(src, main, center)
		} else {
			comp.Direction = freeDirection(src, c.NormalizeDirections)
		}
		set.Components = append(set.Components, comp)
	}
	return set, nil
}

// freeDirection draws each axis from [-1, 1).
func freeDirection(src *rand.Rand, normalize bool) r2.Vec {
	d := r2.Vec{X: rng.Uniform(src, -1, 1), Y: rng.Uniform(src, -1, 1)}
	if normalize && r2.Norm(d) > 0 {
		d = r2.Unit(d)
	}
	return d
}

// mixedDirection blends a random unit heading into main; main must already be unit length.
func mixedDirection(src *rand.Rand, main r2.Vec, center float64) r2.Vec {
	theta := src.Float64() * 2 * math.Pi
	random := r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	mix := sampling.Sample(nil, mixRare, mixCommon, 0, center)
	d := r2.Add(main, r2.Scale(mix, r2.Sub(random, main)))
	if r2.Norm(d) == 0 {
		return main
	}
	return r2.Unit(d)
}
