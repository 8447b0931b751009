package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// Edge is one triangle edge of a mesh.
type Edge struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Face   int
}

// Summary holds the measurements printed by the info command.
type Summary struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []Edge
}

// Summarize measures m. Edges shared by two faces are listed once per face.
func Summarize(m *mesh.Mesh) *Summary {
	s := &Summary{
		BoundingBox: m.BoundingBox(),
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		Edges:       make([]Edge, 0, m.FaceCount()*3),
	}
	s.Dimensions = s.BoundingBox.Size()

	minLength := math.MaxFloat64
	total := 0.0
	for i := range m.Faces {
		tri := m.Triangle(i)
		s.SurfaceArea += tri.Area()

		for _, e := range [][2]geometry.Vector3{{tri.V1, tri.V2}, {tri.V2, tri.V3}, {tri.V3, tri.V1}} {
			length := e[0].Distance(e[1])
			s.Edges = append(s.Edges, Edge{Start: e[0], End: e[1], Length: length, Face: i})

			total += length
			minLength = math.Min(minLength, length)
			s.MaxEdgeLength = math.Max(s.MaxEdgeLength, length)
		}
	}

	if len(s.Edges) > 0 {
		s.MinEdgeLength = minLength
		s.AvgEdgeLength = total / float64(len(s.Edges))
	}
	return s
}

// LongestEdges returns up to count edges, longest first.
func (s *Summary) LongestEdges(count int) []Edge {
	return s.sorted(count, func(a, b Edge) bool { return a.Length > b.Length })
}

// ShortestEdges returns up to count edges, shortest first.
func (s *Summary) ShortestEdges(count int) []Edge {
	return s.sorted(count, func(a, b Edge) bool { return a.Length < b.Length })
}

func (s *Summary) sorted(count int, less func(a, b Edge) bool) []Edge {
	edges := make([]Edge, len(s.Edges))
	copy(edges, s.Edges)
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with its unit.
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector.
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
