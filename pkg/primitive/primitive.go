// Package primitive builds meshes of simple solids, either exactly (Cube)
// or by tessellating sdfx signed distance fields.
package primitive

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 64

// ErrEmptySurface is returned when tessellation yields no triangles.
var ErrEmptySurface = errors.New("tessellation produced no triangles")

// Cube returns an axis-aligned cube with its minimum corner at the origin:
// 8 vertices and 12 outward-facing triangles.
func Cube(size float64) *mesh.Mesh {
	v := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(x*size, y*size, z*size)
	}
	m := &mesh.Mesh{
		Name: "cube",
		Vertices: []geometry.Vector3{
			v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
			v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1),
		},
		Faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // front
			{2, 3, 7}, {2, 7, 6}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
		},
	}
	m.FaceNormals = make([]geometry.Vector3, len(m.Faces))
	for i := range m.Faces {
		m.FaceNormals[i] = m.Triangle(i).CalculateNormal()
	}
	return m
}

// Box tessellates an x × y × z box centred on the origin.
func Box(x, y, z float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return Tessellate("box", s, cells)
}

// Cylinder tessellates a cylinder along Z centred on the origin.
func Cylinder(height, radius float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	return Tessellate("cylinder", s, cells)
}

// Sphere tessellates a sphere centred on the origin.
func Sphere(radius float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	return Tessellate("sphere", s, cells)
}

// Tessellate renders s with uniform marching cubes and welds the result
// into an indexed mesh.
func Tessellate(name string, s sdf.SDF3, cells int) (*mesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySurface)
	}

	b := mesh.NewBuilder(name)
	for _, tri := range triangles {
		n := tri.Normal()
		b.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(n.X, n.Y, n.Z),
			vec(tri[0]), vec(tri[1]), vec(tri[2]),
		))
	}
	return b.Mesh(), nil
}

func vec(v v3.Vec) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}
