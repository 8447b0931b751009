package threemf

import (
	"path/filepath"
	"testing"

	"github.com/hpinc/go3mf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTriangle(t *testing.T, path string) {
	t.Helper()

	var model go3mf.Model
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID: 1,
		Mesh: &go3mf.Mesh{
			Vertices: go3mf.Vertices{Vertex: []go3mf.Point3D{
				{0, 0, 0}, {10, 0, 0}, {0, 10, 0},
			}},
			Triangles: go3mf.Triangles{Triangle: []go3mf.Triangle{
				{V1: 0, V2: 1, V3: 2},
			}},
		},
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	w, err := go3mf.CreateWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Encode(&model))
	require.NoError(t, w.Close())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.3mf")
	writeTriangle(t, path)

	m, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.InDelta(t, 1.0, m.FaceNormals[0].Z, 1e-9)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.3mf"))
	assert.Error(t, err)
}
