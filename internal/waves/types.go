// Package waves assembles sets of Gerstner wave components from the biased sampler.
package waves

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/sampling"
)

// Range is an inclusive [Min, Max] parameter span.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (r Range) validate(name string) error {
	if err := sampling.ValidateBounds(r.Min, r.Max); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if r.Min > r.Max {
		return generr.Invalid("%s: min %v > max %v", name, r.Min, r.Max)
	}
	return nil
}

// Sweep selects the order in which bias centers walk across (0, 1].
type Sweep int

const (
	// Ascending uses centers 1/n, 2/n, ..., 1.
	Ascending Sweep = iota
	// Descending uses centers 1, (n-1)/n, ..., 1/n.
	Descending
)

func (s Sweep) String() string {
	switch s {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Sweep(%d)", int(s))
	}
}

// ParseSweep accepts "ascending"/"asc" and "descending"/"desc".
func ParseSweep(s string) (Sweep, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return 0, generr.Invalid("unknown sweep %q", s)
}

// Centers returns the n bias centers for the sweep.
func Centers(n int, sweep Sweep) []float64 {
	out := make([]float64, n)
	for i := range out {
		if sweep == Descending {
			out[i] = float64(n-i) / float64(n)
		} else {
			out[i] = float64(i+1) / float64(n)
		}
	}
	return out
}

// Component is a single Gerstner wave. Direction is the horizontal (x, z) heading.
type Component struct {
	Steepness  float64 `json:"steepness"`
	Wavelength float64 `json:"wavelength"`
	Velocity   float64 `json:"velocity"`
	Direction  r2.Vec  `json:"direction"`
}

// Set is an ordered list of components.
type Set struct {
	Components []Component `json:"components"`
}

func (s Set) Len() int { return len(s.Components) }

func (s Set) Steepness() []float64 {
	out := make([]float64, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.Steepness
	}
	return out
}

func (s Set) Wavelengths() []float64 {
	out := make([]float64, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.Wavelength
	}
	return out
}

func (s Set) Velocities() []float64 {
	out := make([]float64, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.Velocity
	}
	return out
}

func (s Set) Directions() []r2.Vec {
	out := make([]r2.Vec, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.Direction
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
