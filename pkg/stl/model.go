package stl

import (
	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// Model is the raw triangle soup of an STL file.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Mesh welds the triangles into an indexed mesh.
func (m *Model) Mesh() *mesh.Mesh {
	return mesh.FromTriangles(m.Name, m.Triangles)
}

// FromMesh expands an indexed mesh back into a triangle soup.
func FromMesh(m *mesh.Mesh) *Model {
	model := NewModel(m.Name)
	for i := range m.Faces {
		model.AddTriangle(m.Triangle(i))
	}
	return model
}
