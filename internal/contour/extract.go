package contour

import (
	"github.com/paulmach/orb"

	"github.com/philipparndt/meshshape/internal/config"
)

// Contour is a traced boundary in grid coordinates. Closed contours repeat
// their first point at the end.
type Contour struct {
	Points    []orb.Point
	Transform Transform
}

// Closed reports whether the contour ends where it starts.
func (c Contour) Closed() bool {
	n := len(c.Points)
	return n > 1 && c.Points[0].Equal(c.Points[n-1])
}

// ToWorld maps the contour back onto the projection plane.
func (c Contour) ToWorld() []orb.Point {
	out := make([]orb.Point, len(c.Points))
	for i, p := range c.Points {
		out[i] = c.Transform.ToWorld(p)
	}
	return out
}

// Extract rasterizes points onto a cfg.GridSize grid and traces the
// boundaries of the occupied region. When cfg.FillFaces is set, faces
// (indices into points) are scan-converted as well. Contours with fewer
// than three points are dropped. Degenerate input yields no contours.
func Extract(points []orb.Point, faces [][3]int, cfg config.Contour) []Contour {
	g, t, ok := Rasterize(points, cfg.GridSize)
	if !ok {
		return nil
	}

	if cfg.FillFaces {
		for _, f := range faces {
			if !valid(f, len(points)) {
				continue
			}
			g.FillTriangle(t.ToGrid(points[f[0]]), t.ToGrid(points[f[1]]), t.ToGrid(points[f[2]]))
		}
	}

	var out []Contour
	for _, line := range Trace(g) {
		if len(line) < 3 {
			continue
		}
		out = append(out, Contour{Points: line, Transform: t})
	}
	return out
}

func valid(f [3]int, n int) bool {
	for _, i := range f {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
