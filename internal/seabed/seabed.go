// Package seabed generates the ocean floor height grid underneath the wave surface.
package seabed

import (
	"encoding/json"
	"io"
	"math"

	"github.com/ojrac/opensimplex-go"

	"tidegen.dev/internal/generr"
)

// Config describes a square floor patch centred on the origin.
type Config struct {
	Seed    int64
	Size    float64
	Density int
	MinY    float64
	MaxY    float64
	// Frequency scales world coordinates before sampling noise.
	Frequency   float64
	Octaves     int
	Persistence float64
}

func (c Config) Validate() error {
	if !(c.Size > 0) || math.IsInf(c.Size, 0) {
		return generr.Invalid("size %v must be finite and > 0", c.Size)
	}
	if c.Density < 1 {
		return generr.Invalid("density %d must be >= 1", c.Density)
	}
	if math.IsNaN(c.MinY) || math.IsNaN(c.MaxY) || c.MinY > c.MaxY {
		return generr.Invalid("floor range [%v, %v] is not ordered", c.MinY, c.MaxY)
	}
	if !(c.Frequency > 0) {
		return generr.Invalid("frequency %v must be > 0", c.Frequency)
	}
	if c.Octaves < 1 {
		return generr.Invalid("octaves %d must be >= 1", c.Octaves)
	}
	if !(c.Persistence > 0) || c.Persistence > 1 {
		return generr.Invalid("persistence %v must be in (0, 1]", c.Persistence)
	}
	return nil
}

// Grid holds (Density+1)^2 heights; Heights[row][col] sits at
// (-Size/2 + col*Spacing, -Size/2 + row*Spacing).
type Grid struct {
	Size    float64     `json:"size"`
	Density int         `json:"density"`
	Spacing float64     `json:"spacing"`
	Heights [][]float64 `json:"heights"`
}

// Generate samples fractal simplex noise over the patch and maps it into [MinY, MaxY].
func Generate(c Config) (Grid, error) {
	if err := c.Validate(); err != nil {
		return Grid{}, err
	}
	noise := opensimplex.NewNormalized(c.Seed)
	spacing := c.Size / float64(c.Density)
	g := Grid{
		Size:    c.Size,
		Density: c.Density,
		Spacing: spacing,
		Heights: make([][]float64, c.Density+1),
	}
	for row := range g.Heights {
		z := -c.Size/2 + float64(row)*spacing
		g.Heights[row] = make([]float64, c.Density+1)
		for col := range g.Heights[row] {
			x := -c.Size/2 + float64(col)*spacing
			v := fbm(noise, x*c.Frequency, z*c.Frequency, c.Octaves, c.Persistence)
			g.Heights[row][col] = c.MinY + (c.MaxY-c.MinY)*math.Min(1, math.Max(0, v))
		}
	}
	return g, nil
}

// fbm sums octaves of normalized noise, so the result stays in [0, 1].
func fbm(n opensimplex.Noise, x, y float64, octaves int, persistence float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}

// WriteJSON writes the grid with the same 4-space indent as the placement files.
func WriteJSON(w io.Writer, g Grid) error {
	b, err := json.MarshalIndent(g, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
