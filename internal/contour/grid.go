// Package contour rasterizes projected point sets and traces the boundaries
// of their occupied regions.
package contour

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Grid is a square occupancy grid indexed by (x, y) cell coordinates.
type Grid struct {
	Size  int
	cells []bool
}

// NewGrid allocates an empty size × size grid.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, cells: make([]bool, size*size)}
}

// In reports whether (x, y) is a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// At reports whether (x, y) is occupied. Cells outside the grid are empty.
func (g *Grid) At(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	return g.cells[x*g.Size+y]
}

// Set marks (x, y) as occupied and reports whether the cell was inside.
func (g *Grid) Set(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	g.cells[x*g.Size+y] = true
	return true
}

// Occupied counts occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Transform maps plane coordinates into grid coordinates and back.
type Transform struct {
	Min   orb.Point
	Scale orb.Point
}

// NewTransform fits bound onto a size × size grid, scaling each axis
// independently by (size-1)/range. It reports false when either axis has no
// extent.
func NewTransform(bound orb.Bound, size int) (Transform, bool) {
	dx := bound.Max[0] - bound.Min[0]
	dy := bound.Max[1] - bound.Min[1]
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return Transform{}, false
	}
	span := float64(size - 1)
	return Transform{
		Min:   bound.Min,
		Scale: orb.Point{span / dx, span / dy},
	}, true
}

// ToGrid returns the unrounded grid position of p.
func (t Transform) ToGrid(p orb.Point) orb.Point {
	return orb.Point{
		p[0]*t.Scale[0] - t.Min[0]*t.Scale[0],
		p[1]*t.Scale[1] - t.Min[1]*t.Scale[1],
	}
}

// ToWorld maps a grid position back onto the plane.
func (t Transform) ToWorld(p orb.Point) orb.Point {
	return orb.Point{
		p[0]/t.Scale[0] + t.Min[0],
		p[1]/t.Scale[1] + t.Min[1],
	}
}

// Cell returns the cell containing p, truncating toward zero.
func (t Transform) Cell(p orb.Point) (int, int) {
	g := t.ToGrid(p)
	return int(g[0]), int(g[1])
}

// Rasterize marks the cell of every point. Points whose cell falls outside
// the grid are dropped. It reports false, with a nil grid, when the point
// set is empty, has zero extent on an axis or lies on a single line.
func Rasterize(points []orb.Point, size int) (*Grid, Transform, bool) {
	if len(points) == 0 || size < 2 || collinear(points) {
		return nil, Transform{}, false
	}
	t, ok := NewTransform(orb.MultiPoint(points).Bound(), size)
	if !ok {
		return nil, Transform{}, false
	}

	g := NewGrid(size)
	for _, p := range points {
		x, y := t.Cell(p)
		g.Set(x, y)
	}
	return g, t, true
}

// collinearEpsilon bounds the cross product, relative to the squared extent
// of the point set, below which a point counts as on the line.
const collinearEpsilon = 1e-9

// collinear reports whether every point lies on the line through the first
// two distinct points. Sets with fewer than two distinct points count as
// collinear.
func collinear(points []orb.Point) bool {
	origin := points[0]
	dir := -1
	for i, p := range points {
		if !p.Equal(origin) {
			dir = i
			break
		}
	}
	if dir < 0 {
		return true
	}

	b := orb.MultiPoint(points).Bound()
	dx, dy := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	tol := collinearEpsilon * (dx*dx + dy*dy)

	d := points[dir]
	for _, p := range points[dir+1:] {
		c := (d[0]-origin[0])*(p[1]-origin[1]) - (d[1]-origin[1])*(p[0]-origin[0])
		if math.Abs(c) > tol {
			return false
		}
	}
	return true
}

// FillTriangle scan-converts a triangle given in grid coordinates, marking
// every cell whose lattice point lies inside it.
func (g *Grid) FillTriangle(a, b, c orb.Point) {
	v := []orb.Point{a, b, c}
	sort.Slice(v, func(i, j int) bool { return v[i][0] < v[j][0] })

	x0 := int(math.Max(0, math.Ceil(v[0][0])))
	x1 := int(math.Min(float64(g.Size-1), math.Floor(v[2][0])))

	for x := x0; x <= x1; x++ {
		fx := float64(x)

		yStart := edgeAt(v[0], v[2], fx)
		var yEnd float64
		if fx < v[1][0] {
			yEnd = edgeAt(v[0], v[1], fx)
		} else {
			yEnd = edgeAt(v[1], v[2], fx)
		}
		if yStart > yEnd {
			yStart, yEnd = yEnd, yStart
		}

		y0 := int(math.Max(0, math.Ceil(yStart)))
		y1 := int(math.Min(float64(g.Size-1), math.Floor(yEnd)))
		for y := y0; y <= y1; y++ {
			g.Set(x, y)
		}
	}
}

// edgeAt returns the y coordinate of segment pq at x.
func edgeAt(p, q orb.Point, x float64) float64 {
	if q[0] == p[0] {
		return p[1]
	}
	t := (x - p[0]) / (q[0] - p[0])
	return p[1] + t*(q[1]-p[1])
}
