// Package gerstner evaluates a wave set the way the ocean shader does, so generated sets
// can be probed without the renderer.
package gerstner

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"tidegen.dev/internal/waves"
)

const (
	heightTolerance     = 0.01
	heightMaxIterations = 10
)

// term returns the per-component phase f and amplitude a at a rest position.
func term(c waves.Component, pos r3.Vec, t float64) (k, f, a float64) {
	k = 2 * math.Pi / c.Wavelength
	f = k*(pos.X*c.Direction.X+pos.Z*c.Direction.Y) - c.Velocity*t
	a = c.Steepness / k
	return k, f, a
}

// Displace moves a rest position on the surface by every component at time t.
func Displace(set waves.Set, pos r3.Vec, t float64) r3.Vec {
	out := pos
	for _, c := range set.Components {
		_, f, a := term(c, pos, t)
		cos := math.Cos(f)
		out = r3.Add(out, r3.Vec{
			X: c.Direction.X * a * cos,
			Y: a * math.Sin(f),
			Z: c.Direction.Y * a * cos,
		})
	}
	return out
}

// Normal is the upward-facing unit surface normal at a rest position.
func Normal(set waves.Set, pos r3.Vec, t float64) r3.Vec {
	rx := r3.Vec{X: 1}
	rz := r3.Vec{Z: 1}
	for _, c := range set.Components {
		k, f, a := term(c, pos, t)
		dx, dz := c.Direction.X, c.Direction.Y
		sin, cos := math.Sin(f), math.Cos(f)
		rx = r3.Add(rx, r3.Vec{
			X: -dx * dx * a * k * sin,
			Y: dx * a * k * cos,
			Z: -dx * dz * a * k * sin,
		})
		rz = r3.Add(rz, r3.Vec{
			X: -dz * dx * a * k * sin,
			Y: dz * a * k * cos,
			Z: -dz * dz * a * k * sin,
		})
	}
	n := r3.Unit(r3.Cross(rz, rx))
	if n.Y < 0 {
		return r3.Scale(-1, n)
	}
	return n
}

// HeightAt returns the surface height above the world point (x, z). Gerstner waves move
// points horizontally, so the rest position whose displaced image lands on (x, z) is found
// by fixed-point iteration first.
func HeightAt(set waves.Set, x, z, t float64) float64 {
	rest := r3.Vec{X: x, Z: z}
	var p r3.Vec
	for i := 0; i < heightMaxIterations; i++ {
		p = Displace(set, rest, t)
		ex, ez := p.X-x, p.Z-z
		if math.Hypot(ex, ez) < heightTolerance {
			break
		}
		rest.X -= ex
		rest.Z -= ez
	}
	return p.Y
}
