// Package polygon validates traced contours and classifies them into
// primitive shapes.
package polygon

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Polygon is a validated, counter-clockwise, closed ring. The zero value has
// no exterior ring.
type Polygon struct {
	ring orb.Ring
}

// New builds a polygon from a contour. Repeated closing points and
// consecutive duplicates are dropped. The ring is wound counter-clockwise
// from its lowest (y, x) vertex. It reports false when fewer than three
// distinct points remain, the area is zero or the ring crosses itself.
func New(points []orb.Point) (Polygon, bool) {
	pts := dedupe(points)
	if len(pts) < 3 {
		return Polygon{}, false
	}

	ring := append(orb.Ring(pts), pts[0])
	if !(math.Abs(planar.Area(ring)) > 0) {
		return Polygon{}, false
	}
	if selfIntersects(pts) {
		return Polygon{}, false
	}
	if ring.Orientation() != orb.CCW {
		ring.Reverse()
	}
	return Polygon{ring: canonical(ring)}, true
}

// canonical rotates a closed ring to start at its lowest (y, x) vertex, so
// every traversal of the same outline measures its sides in the same order.
func canonical(ring orb.Ring) orb.Ring {
	pts := ring[:len(ring)-1]
	start := 0
	for i, p := range pts {
		q := pts[start]
		if p[1] < q[1] || (p[1] == q[1] && p[0] < q[0]) {
			start = i
		}
	}
	out := make(orb.Ring, 0, len(ring))
	out = append(out, pts[start:]...)
	out = append(out, pts[:start]...)
	return append(out, out[0])
}

func dedupe(points []orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// Valid reports whether p has an exterior ring.
func (p Polygon) Valid() bool { return len(p.ring) > 3 }

// Ring returns the closed exterior ring.
func (p Polygon) Ring() orb.Ring { return p.ring }

// N is the number of distinct vertices.
func (p Polygon) N() int {
	if !p.Valid() {
		return 0
	}
	return len(p.ring) - 1
}

// Vertex returns the i-th distinct vertex.
func (p Polygon) Vertex(i int) orb.Point { return p.ring[i] }

// Area is the enclosed area.
func (p Polygon) Area() float64 {
	if !p.Valid() {
		return 0
	}
	return math.Abs(planar.Area(p.ring))
}

// Perimeter is the length of the closed boundary.
func (p Polygon) Perimeter() float64 {
	if !p.Valid() {
		return 0
	}
	return planar.Length(p.ring)
}

// Sides returns the edge lengths in ring order.
func (p Polygon) Sides() []float64 {
	n := p.N()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = planar.Distance(p.ring[i], p.ring[i+1])
	}
	return out
}

// selfIntersects checks every pair of non-adjacent edges of the implicit
// closed ring pts.
func selfIntersects(pts []orb.Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsTouch(a, b, pts[j], pts[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func onSegment(p, q, r orb.Point) bool {
	return math.Min(p[0], r[0]) <= q[0] && q[0] <= math.Max(p[0], r[0]) &&
		math.Min(p[1], r[1]) <= q[1] && q[1] <= math.Max(p[1], r[1])
}

func segmentsTouch(p1, p2, q1, q2 orb.Point) bool {
	d1 := sign(cross(q1, q2, p1))
	d2 := sign(cross(q1, q2, p2))
	d3 := sign(cross(p1, p2, q1))
	d4 := sign(cross(p1, p2, q2))

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, p1, q2):
		return true
	case d2 == 0 && onSegment(q1, p2, q2):
		return true
	case d3 == 0 && onSegment(p1, q1, p2):
		return true
	case d4 == 0 && onSegment(p1, q2, p2):
		return true
	}
	return false
}
