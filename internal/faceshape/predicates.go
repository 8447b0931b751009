// Package faceshape labels groups of mesh faces with primitive shapes from
// the extents and edge lengths of their vertices.
package faceshape

import (
	"math"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/pkg/geometry"
)

// near reports |a-b| <= abs + rel*|b|.
func near(a, b float64, cfg config.Face) bool {
	return math.Abs(a-b) <= cfg.AbsTolerance+cfg.Threshold*math.Abs(b)
}

// extents returns the per-axis range of vs.
func extents(vs []geometry.Vector3) geometry.Vector3 {
	return geometry.BoundsOf(vs).Size()
}

// loopEdges returns the lengths of the closed loop v0 v1 ... vn-1 v0.
func loopEdges(vs []geometry.Vector3) []float64 {
	out := make([]float64, len(vs))
	for i := range vs {
		out[i] = vs[i].Distance(vs[(i+1)%len(vs)])
	}
	return out
}

// IsCylinder holds when the Z extent exceeds threshold times half the mean
// X/Y extent.
func IsCylinder(vs []geometry.Vector3, cfg config.Face) bool {
	if len(vs) == 0 {
		return false
	}
	e := extents(vs)
	radius := (e.X + e.Y) / 2 / 2
	return e.Z > radius*cfg.Threshold
}

// IsRectangle holds for four vertices whose opposite loop edges match.
func IsRectangle(vs []geometry.Vector3, cfg config.Face) bool {
	if len(vs) != 4 {
		return false
	}
	e := loopEdges(vs)
	return near(e[0], e[2], cfg) && near(e[1], e[3], cfg)
}

// IsSquare is a rectangle whose adjacent edges match too.
func IsSquare(vs []geometry.Vector3, cfg config.Face) bool {
	if !IsRectangle(vs, cfg) {
		return false
	}
	e := loopEdges(vs)
	return near(e[0], e[1], cfg)
}

// IsCircle holds when every vertex is about as far from the centroid as the
// first one.
func IsCircle(vs []geometry.Vector3, cfg config.Face) bool {
	if len(vs) == 0 {
		return false
	}
	c := geometry.Centroid(vs)
	first := vs[0].Distance(c)
	for _, v := range vs[1:] {
		if !near(v.Distance(c), first, cfg) {
			return false
		}
	}
	return true
}
