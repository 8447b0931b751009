package mesh

import "github.com/philipparndt/meshshape/pkg/geometry"

// Builder welds a triangle soup into an indexed mesh. Vertices with exactly
// equal coordinates share one index, in first-seen order.
type Builder struct {
	name  string
	mesh  *Mesh
	index map[geometry.Vector3]int
}

// NewBuilder creates an empty builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		mesh:  &Mesh{Name: name},
		index: make(map[geometry.Vector3]int),
	}
}

// AddTriangle appends a face. A zero normal is replaced by the normal
// computed from the winding order.
func (b *Builder) AddTriangle(t geometry.Triangle) {
	var face [3]int
	for i, v := range t.Vertices() {
		face[i] = b.vertex(v)
	}

	normal := t.Normal
	if normal == (geometry.Vector3{}) {
		normal = t.CalculateNormal()
	}

	b.mesh.Faces = append(b.mesh.Faces, face)
	b.mesh.FaceNormals = append(b.mesh.FaceNormals, normal)
}

func (b *Builder) vertex(v geometry.Vector3) int {
	if idx, ok := b.index[v]; ok {
		return idx
	}
	idx := len(b.mesh.Vertices)
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.index[v] = idx
	return idx
}

// Mesh returns the welded mesh. The builder must not be used afterwards.
func (b *Builder) Mesh() *Mesh {
	return b.mesh
}

// FromTriangles welds triangles into a mesh.
func FromTriangles(name string, triangles []geometry.Triangle) *Mesh {
	b := NewBuilder(name)
	for _, t := range triangles {
		b.AddTriangle(t)
	}
	return b.Mesh()
}
