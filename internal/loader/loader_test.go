package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshshape/pkg/mesh"
	"github.com/philipparndt/meshshape/pkg/primitive"
	"github.com/philipparndt/meshshape/pkg/stl"
)

func TestLoadSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, stl.FromMesh(primitive.Cube(1)).Save(path, false))

	m, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.FaceCount())
}

func TestLoadEmptySTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid empty\nendsolid empty\n"), 0o644))

	_, err := Load(context.Background(), path)
	assert.True(t, errors.Is(err, mesh.ErrEmptyMesh))
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load(context.Background(), "model.obj")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestDependencies(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.scad")
	lib := filepath.Join(dir, "lib.scad")
	require.NoError(t, os.WriteFile(main, []byte("use <lib.scad>\ncube(1);\n"), 0o644))
	require.NoError(t, os.WriteFile(lib, []byte("module x() {}\n"), 0o644))

	deps, err := Dependencies(main)
	require.NoError(t, err)
	assert.Equal(t, []string{main, lib}, deps)

	deps, err = Dependencies("part.stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"part.stl"}, deps)
}
