package tuning

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/rng"
	"tidegen.dev/internal/scatter"
	"tidegen.dev/internal/seabed"
	"tidegen.dev/internal/waves"
	"tidegen.dev/internal/waves/emit"
)

// Validate converts every section and reports the first invalid one.
func (t Tuning) Validate() error {
	switch t.Waves.Mode {
	case ModeBiased, ModeDecay:
	default:
		return generr.Invalid("waves.mode %q must be %q or %q", t.Waves.Mode, ModeBiased, ModeDecay)
	}
	if _, err := emit.ParseFormat(t.Waves.Format); err != nil {
		return fmt.Errorf("waves.format: %w", err)
	}
	wc, err := t.WaveConfig()
	if err != nil {
		return err
	}
	if err := wc.Validate(); err != nil {
		return fmt.Errorf("waves: %w", err)
	}
	dc, err := t.DecayConfig()
	if err != nil {
		return err
	}
	if err := dc.Validate(); err != nil {
		return fmt.Errorf("decay: %w", err)
	}
	sc, err := t.ScatterConfig()
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	if err := t.SeabedConfig().Validate(); err != nil {
		return fmt.Errorf("seabed: %w", err)
	}
	return nil
}

// Source returns the seeded generator for this run.
func (t Tuning) Source() *rand.Rand {
	return rng.FromString(t.Seed)
}

func (t Tuning) WaveConfig() (waves.Config, error) {
	w := t.Waves
	sweep, err := waves.ParseSweep(w.Sweep)
	if err != nil {
		return waves.Config{}, fmt.Errorf("waves.sweep: %w", err)
	}
	c := waves.Config{
		Count:               w.Count,
		Steepness:           waves.Range(w.Steepness),
		Wavelength:          waves.Range(w.Wavelength),
		Velocity:            waves.Range(w.Velocity),
		Deviation:           waves.DefaultDeviation(w.Count),
		Sweep:               sweep,
		NormalizeDirections: w.NormalizeDirections,
	}
	if w.Deviation != nil {
		c.Deviation = *w.Deviation
	}
	if w.MainDirection != nil {
		d, err := pair("waves.main_direction", w.MainDirection)
		if err != nil {
			return waves.Config{}, err
		}
		main := r2.Vec{X: d[0], Y: d[1]}
		c.MainDirection = &main
	}
	return c, nil
}

func (t Tuning) DecayConfig() (waves.DecayConfig, error) {
	d := t.Decay
	c := waves.DecayConfig{
		Count:              d.Count,
		StartSteepness:     d.StartSteepness,
		StartWavelength:    d.StartWavelength,
		StartVelocity:      d.StartSpeed,
		MaxSteepnessDecay:  d.MaxSteepnessDecay,
		MaxWavelengthDecay: d.MaxWavelengthDecay,
		MaxVelocityDecay:   d.MaxSpeedDecay,
	}
	if d.StartDirection != nil {
		dir, err := pair("decay.start_direction", d.StartDirection)
		if err != nil {
			return waves.DecayConfig{}, err
		}
		c.StartDirection = r2.Vec{X: dir[0], Y: dir[1]}
	}
	return c, nil
}

func (t Tuning) ScatterConfig() (scatter.Config, error) {
	s := t.Scatter
	x, err := pair("scatter.x", s.X)
	if err != nil {
		return scatter.Config{}, err
	}
	y, err := pair("scatter.y", s.Y)
	if err != nil {
		return scatter.Config{}, err
	}
	return scatter.Config{
		Count:       s.Count,
		MinDistance: s.MinDistance,
		X:           scatter.Range{Min: x[0], Max: x[1]},
		Y:           scatter.Range{Min: y[0], Max: y[1]},
		MaxAttempts: s.MaxAttempts,
	}, nil
}

// SeabedConfig derives the noise seed from the textual run seed.
func (t Tuning) SeabedConfig() seabed.Config {
	s := t.Seabed
	h, _ := rng.StringSeeds(t.Seed)
	return seabed.Config{
		Seed:        int64(h),
		Size:        s.Size,
		Density:     s.Density,
		MinY:        s.MinY,
		MaxY:        s.MaxY,
		Frequency:   s.Frequency,
		Octaves:     s.Octaves,
		Persistence: s.Persistence,
	}
}

func pair(name string, v []float64) ([2]float64, error) {
	if len(v) != 2 {
		return [2]float64{}, generr.Invalid("%s must have exactly 2 values, got %d", name, len(v))
	}
	return [2]float64{v[0], v[1]}, nil
}
