package scatter

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// maxGridCells bounds the bucket allocation; finer grids fall back to a linear scan.
const maxGridCells = 1 << 22

// grid buckets accepted points into cells of side minDist/sqrt2, so a candidate only
// needs to be compared against the 5x5 block of cells around it.
type grid struct {
	minX, minY float64
	cell       float64
	w, h       int
	minDist2   float64
	cells      [][]int
	linear     bool
}

func newGrid(x, y Range, minDist float64) *grid {
	if minDist <= 0 {
		return &grid{}
	}
	g := &grid{minX: x.Min, minY: y.Min, minDist2: minDist * minDist}
	g.cell = minDist / math.Sqrt2
	w := math.Max(1, math.Ceil((x.Max-x.Min)/g.cell))
	h := math.Max(1, math.Ceil((y.Max-y.Min)/g.cell))
	if w*h > maxGridCells {
		g.linear = true
		return g
	}
	g.w, g.h = int(w), int(h)
	g.cells = make([][]int, g.w*g.h)
	return g
}

func (g *grid) coords(p Point) (int, int) {
	gx := int((p.X - g.minX) / g.cell)
	gy := int((p.Y - g.minY) / g.cell)
	return min(max(gx, 0), g.w-1), min(max(gy, 0), g.h-1)
}

func (g *grid) tooClose(a, b Point) bool {
	return r2.Norm2(r2.Sub(a.Vec(), b.Vec())) < g.minDist2
}

// clear reports whether p keeps the minimum distance to every accepted point.
func (g *grid) clear(points []Point, p Point) bool {
	switch {
	case g.linear:
		for _, q := range points {
			if g.tooClose(q, p) {
				return false
			}
		}
		return true
	case g.cells == nil:
		return true
	}
	gx, gy := g.coords(p)
	for y := max(gy-2, 0); y <= min(gy+2, g.h-1); y++ {
		for x := max(gx-2, 0); x <= min(gx+2, g.w-1); x++ {
			for _, idx := range g.cells[y*g.w+x] {
				if g.tooClose(points[idx], p) {
					return false
				}
			}
		}
	}
	return true
}

func (g *grid) insert(p Point, idx int) {
	if g.cells == nil {
		return
	}
	gx, gy := g.coords(p)
	g.cells[gy*g.w+gx] = append(g.cells[gy*g.w+gx], idx)
}
