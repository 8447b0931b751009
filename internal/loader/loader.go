// Package loader reads meshes from STL, 3MF and OpenSCAD files.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/philipparndt/meshshape/pkg/mesh"
	"github.com/philipparndt/meshshape/pkg/openscad"
	"github.com/philipparndt/meshshape/pkg/stl"
	"github.com/philipparndt/meshshape/pkg/threemf"
)

// ErrUnsupported is returned for file extensions no loader handles.
var ErrUnsupported = errors.New("unsupported file type")

// Load reads path by extension and validates the result. Meshes without
// vertices or faces are rejected with mesh.ErrEmptyMesh.
func Load(ctx context.Context, path string) (*mesh.Mesh, error) {
	m, err := decode(ctx, path)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", path, mesh.ErrEmptyMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("loader: %s: %d vertices, %d faces", path, m.VertexCount(), m.FaceCount())
	return m, nil
}

func decode(ctx context.Context, path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		return model.Mesh(), nil
	case ".3mf":
		return threemf.Load(path)
	case ".scad":
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		return openscad.NewRenderer(filepath.Dir(abs)).RenderMesh(ctx, abs)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}

// Dependencies lists the files whose changes affect path: the file itself
// and, for OpenSCAD sources, every used or included file.
func Dependencies(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
}
