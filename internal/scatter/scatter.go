// Package scatter places points in a rectangle with a minimum pairwise separation by
// rejection sampling.
package scatter

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/rng"
)

const (
	minAttemptBudget      = 100_000
	attemptBudgetPerPoint = 1000
)

// Point is a placed position. It serializes as {"x": .., "y": ..}.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Range is a half-open [Min, Max) interval.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Config drives Scatter.
type Config struct {
	Count       int
	MinDistance float64
	X           Range
	Y           Range
	// MaxAttempts caps rejected draws; zero picks max(100000, 1000*Count).
	MaxAttempts int
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return generr.Invalid("count %d must be >= 0", c.Count)
	}
	if math.IsNaN(c.MinDistance) || math.IsInf(c.MinDistance, 0) || c.MinDistance < 0 {
		return generr.Invalid("min distance %v must be finite and >= 0", c.MinDistance)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{{"x", c.X}, {"y", c.Y}} {
		if math.IsNaN(r.r.Min) || math.IsNaN(r.r.Max) || math.IsInf(r.r.Min, 0) || math.IsInf(r.r.Max, 0) {
			return generr.Invalid("%s range %v must be finite", r.name, r.r)
		}
		if r.r.Min > r.r.Max {
			return generr.Invalid("%s range min %v > max %v", r.name, r.r.Min, r.r.Max)
		}
	}
	if c.MaxAttempts < 0 {
		return generr.Invalid("max attempts %d must be >= 0", c.MaxAttempts)
	}
	return nil
}

func (c Config) attemptBudget() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return max(minAttemptBudget, attemptBudgetPerPoint*c.Count)
}

// Scatter draws uniform candidates in the rectangle and keeps those at least MinDistance
// from every kept point, until Count are kept. It returns ErrConfigurationInfeasible once
// the rejection budget is spent.
func Scatter(src *rand.Rand, c Config) ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	points := make([]Point, 0, c.Count)
	g := newGrid(c.X, c.Y, c.MinDistance)
	budget := c.attemptBudget()
	rejected := 0
	for len(points) < c.Count {
		p := Point{X: rng.Uniform(src, c.X.Min, c.X.Max), Y: rng.Uniform(src, c.Y.Min, c.Y.Max)}
		if !g.clear(points, p) {
			rejected++
			if rejected >= budget {
				return nil, generr.Infeasible("placed %d of %d points (min distance %v) after %d rejections",
					len(points), c.Count, c.MinDistance, rejected)
			}
			continue
		}
		g.insert(p, len(points))
		points = append(points, p)
	}
	return points, nil
}

// MinPairDistance is the smallest distance between any two points, or +Inf for fewer than two.
func MinPairDistance(points []Point) float64 {
	best := math.Inf(1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := r2.Norm(r2.Sub(points[i].Vec(), points[j].Vec())); d < best {
				best = d
			}
		}
	}
	return best
}
