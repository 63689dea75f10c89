// Package tuning loads generators.yaml, the single place where generator parameters live.
package tuning

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tidegen.dev/internal/schemas"
)

const (
	ModeBiased = "biased"
	ModeDecay  = "decay"
)

type Tuning struct {
	Seed      string `yaml:"seed"`
	RunLogDir string `yaml:"runlog_dir"`

	Waves   WavesSpec   `yaml:"waves"`
	Decay   DecaySpec   `yaml:"decay"`
	Scatter ScatterSpec `yaml:"scatter"`
	Seabed  SeabedSpec  `yaml:"seabed"`
}

type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type WavesSpec struct {
	Mode   string `yaml:"mode"`
	Format string `yaml:"format"`

	Count      int      `yaml:"count"`
	Sweep      string   `yaml:"sweep"`
	Deviation  *float64 `yaml:"deviation"`
	Steepness  Span     `yaml:"steepness"`
	Wavelength Span     `yaml:"wavelength"`
	Velocity   Span     `yaml:"velocity"`

	MainDirection       []float64 `yaml:"main_direction"`
	NormalizeDirections bool      `yaml:"normalize_directions"`
}

type DecaySpec struct {
	Count              int       `yaml:"count"`
	StartSteepness     float64   `yaml:"start_steepness"`
	StartWavelength    float64   `yaml:"start_wavelength"`
	StartSpeed         float64   `yaml:"start_speed"`
	StartDirection     []float64 `yaml:"start_direction"`
	MaxSteepnessDecay  float64   `yaml:"max_steepness_decay"`
	MaxWavelengthDecay float64   `yaml:"max_wavelength_decay"`
	MaxSpeedDecay      float64   `yaml:"max_speed_decay"`
}

type ScatterSpec struct {
	Count       int       `yaml:"count"`
	MinDistance float64   `yaml:"min_distance"`
	X           []float64 `yaml:"x"`
	Y           []float64 `yaml:"y"`
	MaxAttempts int       `yaml:"max_attempts"`
	Out         string    `yaml:"out"`
}

type SeabedSpec struct {
	Size        float64 `yaml:"size"`
	Density     int     `yaml:"density"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Out         string  `yaml:"out"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	t := Defaults()
	if strings.TrimSpace(path) == "" {
		t.Normalize()
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := Parse(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes raw YAML over t, checks it against the embedded schema and validates it.
func Parse(raw []byte, t *Tuning) error {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}
	if tree != nil {
		if err := schemas.ValidateValue(schemas.Generators, tree); err != nil {
			return err
		}
	}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return err
	}
	t.Normalize()
	return t.Validate()
}

// Defaults mirrors the parameters the renderer currently ships with.
func Defaults() Tuning {
	return Tuning{
		Waves: WavesSpec{
			Mode:       ModeBiased,
			Format:     "snippet",
			Count:      20,
			Sweep:      "descending",
			Steepness:  Span{Min: 0.01, Max: 0.4},
			Wavelength: Span{Min: 0.1, Max: 20},
			Velocity:   Span{Min: 0.5, Max: 5},
		},
		Decay: DecaySpec{
			Count:              35,
			StartSteepness:     0.1,
			StartWavelength:    20,
			StartSpeed:         1,
			StartDirection:     []float64{1, 0},
			MaxSteepnessDecay:  0.87,
			MaxWavelengthDecay: 1.29,
			MaxSpeedDecay:      0.81,
		},
		Scatter: ScatterSpec{
			Count:       100,
			MinDistance: 20,
			X:           []float64{-200, 200},
			Y:           []float64{-200, 200},
			Out:         "./positions.json",
		},
		Seabed: SeabedSpec{
			Size:        400,
			Density:     40,
			MinY:        -30,
			MaxY:        -10,
			Frequency:   0.02,
			Octaves:     4,
			Persistence: 0.5,
			Out:         "./seabed.json",
		},
	}
}

func (t *Tuning) Normalize() {
	if t == nil {
		return
	}
	t.Seed = strings.TrimSpace(t.Seed)
	t.RunLogDir = strings.TrimSpace(t.RunLogDir)
	t.Waves.Mode = strings.ToLower(strings.TrimSpace(t.Waves.Mode))
	if t.Waves.Mode == "" {
		t.Waves.Mode = ModeBiased
	}
	t.Waves.Format = strings.ToLower(strings.TrimSpace(t.Waves.Format))
	if t.Waves.Format == "" {
		t.Waves.Format = "snippet"
	}
	t.Waves.Sweep = strings.ToLower(strings.TrimSpace(t.Waves.Sweep))
	if t.Waves.Sweep == "" {
		t.Waves.Sweep = "descending"
	}
	if strings.TrimSpace(t.Scatter.Out) == "" {
		t.Scatter.Out = "./positions.json"
	}
	if strings.TrimSpace(t.Seabed.Out) == "" {
		t.Seabed.Out = "./seabed.json"
	}
}

// LoadOrDefaults is Load, except that a missing file yields the defaults and found=false.
func LoadOrDefaults(path string) (t Tuning, found bool, err error) {
	t, err = Load(path)
	if err != nil && os.IsNotExist(err) {
		t = Defaults()
		t.Normalize()
		return t, false, nil
	}
	return t, err == nil, err
}

// EnsureSeed fills an empty seed from the clock and reports whether it did.
func (t *Tuning) EnsureSeed(now time.Time) bool {
	if t.Seed != "" {
		return false
	}
	t.Seed = strconv.FormatInt(now.UnixNano(), 10)
	return true
}
