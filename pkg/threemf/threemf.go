// Package threemf loads the mesh objects of a 3MF package.
package threemf

import (
	"fmt"

	"github.com/hpinc/go3mf"
	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// Load reads every build item of a 3MF file into one mesh. Item transforms
// are not applied; vertices are taken in object space.
func Load(filename string) (*mesh.Mesh, error) {
	r, err := go3mf.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open 3MF: %w", err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode 3MF: %w", err)
	}

	b := mesh.NewBuilder(filename)
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		if err := addObject(b, obj.Mesh); err != nil {
			return nil, fmt.Errorf("object %d: %w", item.ObjectID, err)
		}
	}
	return b.Mesh(), nil
}

func addObject(b *mesh.Builder, m *go3mf.Mesh) error {
	verts := m.Vertices.Vertex
	for i, t := range m.Triangles.Triangle {
		idx := [3]uint32{t.V1, t.V2, t.V3}
		var corners [3]geometry.Vector3
		for j, v := range idx {
			if int(v) >= len(verts) {
				return fmt.Errorf("%w: triangle %d references vertex %d (have %d)", mesh.ErrIndexOutOfRange, i, v, len(verts))
			}
			p := verts[v]
			corners[j] = geometry.NewVector3(float64(p.X()), float64(p.Y()), float64(p.Z()))
		}
		b.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, corners[0], corners[1], corners[2]))
	}
	return nil
}
