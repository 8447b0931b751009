// Package mesh holds the indexed triangle mesh every analysis stage reads.
package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/meshshape/pkg/geometry"
)

var (
	// ErrEmptyMesh is returned when a computation needs at least one vertex
	// and one face.
	ErrEmptyMesh = errors.New("mesh has no vertices or faces")

	// ErrIndexOutOfRange is returned when a face references a missing vertex.
	ErrIndexOutOfRange = errors.New("face index out of range")

	// ErrNormalCount is returned when face normals are not parallel to faces.
	ErrNormalCount = errors.New("face normal count does not match face count")
)

// Mesh is an indexed triangle mesh. Vertex indices are stable identifiers;
// FaceNormals[i] belongs to Faces[i].
type Mesh struct {
	Name        string
	Vertices    []geometry.Vector3
	Faces       [][3]int
	FaceNormals []geometry.Vector3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Faces) == 0
}

// Validate checks the index and normal invariants.
func (m *Mesh) Validate() error {
	if len(m.FaceNormals) != len(m.Faces) {
		return fmt.Errorf("%w: %d normals for %d faces", ErrNormalCount, len(m.FaceNormals), len(m.Faces))
	}
	for i, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d (have %d)", ErrIndexOutOfRange, i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Triangle returns face i as a geometry.Triangle with its stored normal.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	var normal geometry.Vector3
	if i < len(m.FaceNormals) {
		normal = m.FaceNormals[i]
	}
	return geometry.NewTriangle(normal, m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// BoundingBox returns the bounds of all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}
