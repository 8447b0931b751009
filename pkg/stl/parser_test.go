package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiTetra = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 1
    endloop
  endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	model, err := Decode([]byte(asciiTetra))
	require.NoError(t, err)

	assert.Equal(t, "tetra", model.Name)
	require.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, 0, -1), model.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), model.Triangles[1].V3)

	m := model.Mesh()
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
}

func TestParseASCIIRejectsBadNumbers(t *testing.T) {
	doc := "solid bad\n facet normal 0 0 1\n outer loop\n vertex 0 0 zero\n"
	_, err := Decode([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseASCIIRejectsShortFacet(t *testing.T) {
	doc := "solid bad\n facet normal 0 0 1\n outer loop\n vertex 0 0 0\n vertex 1 0 0\n endloop\n endfacet\n"
	_, err := Decode([]byte(doc))
	assert.Error(t, err)
}

func TestBinaryWithSolidHeader(t *testing.T) {
	model, err := Decode([]byte(asciiTetra))
	require.NoError(t, err)

	// Binary header that starts with "solid" must still decode as binary.
	model.Name = "solid exported by cad"
	var buf bytes.Buffer
	require.NoError(t, model.WriteBinary(&buf))

	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "solid exported by cad", decoded.Name)
	assert.Equal(t, model.Triangles, decoded.Triangles)
}

func TestSaveAndParse(t *testing.T) {
	model, err := Decode([]byte(asciiTetra))
	require.NoError(t, err)

	for _, ascii := range []bool{true, false} {
		path := filepath.Join(t.TempDir(), "out.stl")
		require.NoError(t, model.Save(path, ascii))

		parsed, err := Parse(path)
		require.NoError(t, err)
		assert.Equal(t, model.Triangles, parsed.Triangles, "ascii=%v", ascii)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromMesh(t *testing.T) {
	model, err := Decode([]byte(asciiTetra))
	require.NoError(t, err)

	back := FromMesh(model.Mesh())
	assert.Equal(t, model.Triangles, back.Triangles)
}
