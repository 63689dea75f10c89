package waves

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/rng"
)

// DecayConfig drives GenerateDecay. Each component divides the previous value by a factor
// drawn between the max decay and 1, so a decay below 1 grows the parameter and above 1 shrinks it.
type DecayConfig struct {
	Count int

	StartSteepness  float64
	StartWavelength float64
	StartVelocity   float64
	// StartDirection heads the first component when non-zero.
	StartDirection r2.Vec

	MaxSteepnessDecay  float64
	MaxWavelengthDecay float64
	MaxVelocityDecay   float64
}

func (c DecayConfig) Validate() error {
	if c.Count < 1 {
		return generr.Invalid("count %d must be >= 1", c.Count)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"start steepness", c.StartSteepness},
		{"start wavelength", c.StartWavelength},
		{"start velocity", c.StartVelocity},
		{"max steepness decay", c.MaxSteepnessDecay},
		{"max wavelength decay", c.MaxWavelengthDecay},
		{"max velocity decay", c.MaxVelocityDecay},
	} {
		if !finite(p.v) || p.v <= 0 {
			return generr.Invalid("%s %v must be finite and > 0", p.name, p.v)
		}
	}
	if !finite(c.StartDirection.X) || !finite(c.StartDirection.Y) {
		return generr.Invalid("start direction %v must be finite", c.StartDirection)
	}
	return nil
}

// GenerateDecay builds a chain of components where each parameter is the previous one
// divided by a random decay factor. Headings are random unit vectors.
func GenerateDecay(src *rand.Rand, c DecayConfig) (Set, error) {
	if err := c.Validate(); err != nil {
		return Set{}, err
	}
	first := randomUnit(src)
	if r2.Norm(c.StartDirection) > 0 {
		first = r2.Unit(c.StartDirection)
	}
	set := Set{Components: make([]Component, 1, c.Count)}
	set.Components[0] = Component{
		Steepness:  c.StartSteepness,
		Wavelength: c.StartWavelength,
		Velocity:   c.StartVelocity,
		Direction:  first,
	}
	for i := 1; i < c.Count; i++ {
		prev := set.Components[i-1]
		sd := decayFactor(src, c.MaxSteepnessDecay)
		ld := decayFactor(src, c.MaxWavelengthDecay)
		vd := decayFactor(src, c.MaxVelocityDecay)
		set.Components = append(set.Components, Component{
			Steepness:  prev.Steepness / sd,
			Wavelength: prev.Wavelength / ld,
			Velocity:   prev.Velocity / vd,
			Direction:  randomUnit(src),
		})
	}
	return set, nil
}

func decayFactor(src *rand.Rand, maxDecay float64) float64 {
	return maxDecay + src.Float64()*(1-maxDecay)
}

// randomUnit normalizes a point drawn from the [-1,1) square, redrawing the origin.
func randomUnit(src *rand.Rand) r2.Vec {
	for {
		d := r2.Vec{X: rng.Uniform(src, -1, 1), Y: rng.Uniform(src, -1, 1)}
		if r2.Norm(d) > 1e-12 {
			return r2.Unit(d)
		}
	}
}
