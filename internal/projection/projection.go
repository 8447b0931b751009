// Package projection maps model vertices onto the canonical coordinate
// planes.
package projection

import (
	"github.com/paulmach/orb"
	"github.com/philipparndt/meshshape/pkg/geometry"
)

// Plane is a canonical coordinate plane.
type Plane int

const (
	XY Plane = iota // drops Z
	XZ              // drops Y
	YZ              // drops X
)

// Planes lists the planes in report order.
var Planes = []Plane{XY, XZ, YZ}

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY Plane"
	case XZ:
		return "XZ Plane"
	case YZ:
		return "YZ Plane"
	}
	return "Unknown Plane"
}

// MarshalText encodes the plane by label, so planes can key JSON objects.
func (p Plane) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Point projects a single vertex.
func (p Plane) Point(v geometry.Vector3) orb.Point {
	switch p {
	case XZ:
		return orb.Point{v.X, v.Z}
	case YZ:
		return orb.Point{v.Y, v.Z}
	default:
		return orb.Point{v.X, v.Y}
	}
}

// Project returns one 2D point per vertex, index-aligned with vertices.
func Project(vertices []geometry.Vector3, plane Plane) []orb.Point {
	points := make([]orb.Point, len(vertices))
	for i, v := range vertices {
		points[i] = plane.Point(v)
	}
	return points
}

// ProjectAll projects onto every canonical plane.
func ProjectAll(vertices []geometry.Vector3) map[Plane][]orb.Point {
	out := make(map[Plane][]orb.Point, len(Planes))
	for _, p := range Planes {
		out[p] = Project(vertices, p)
	}
	return out
}
