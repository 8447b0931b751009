// Package analysis computes summary statistics and measurements of meshes.
package analysis

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// ErrEmptySignal is returned when statistics are requested over no values.
var ErrEmptySignal = errors.New("curvature signal is empty")

// Stats summarizes a mesh and a per-face curvature signal.
type Stats struct {
	VertexCount   int     `json:"vertex_count"`
	FaceCount     int     `json:"face_count"`
	CurvatureMean float64 `json:"curvature_mean"`
	CurvatureStd  float64 `json:"curvature_std"`
	CurvatureMin  float64 `json:"curvature_min"`
	CurvatureMax  float64 `json:"curvature_max"`
}

// Analyze counts vertices and faces and computes the population mean,
// standard deviation and extremes of curvatures.
func Analyze(vertices []geometry.Vector3, faces [][3]int, curvatures []float64) (Stats, error) {
	if len(curvatures) == 0 {
		return Stats{}, ErrEmptySignal
	}

	mean, std := stat.PopMeanStdDev(curvatures, nil)
	return Stats{
		VertexCount:   len(vertices),
		FaceCount:     len(faces),
		CurvatureMean: mean,
		CurvatureStd:  std,
		CurvatureMin:  floats.Min(curvatures),
		CurvatureMax:  floats.Max(curvatures),
	}, nil
}

// CurvatureProxy returns the magnitude of every face normal.
func CurvatureProxy(m *mesh.Mesh) []float64 {
	out := make([]float64, len(m.FaceNormals))
	for i, n := range m.FaceNormals {
		out[i] = n.Length()
	}
	return out
}

// AnalyzeMesh runs Analyze over the face normal proxy of m.
func AnalyzeMesh(m *mesh.Mesh) (Stats, error) {
	return Analyze(m.Vertices, m.Faces, CurvatureProxy(m))
}
