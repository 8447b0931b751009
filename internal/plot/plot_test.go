package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshshape/internal/polygon"
	"github.com/philipparndt/meshshape/internal/projection"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/internal/shape"
)

func decodePNG(t *testing.T, file string) {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.NotZero(t, img.Bounds().Dx())
}

func TestSilhouettes(t *testing.T) {
	planes := report.Planes{
		projection.XY: {{
			Record:  polygon.Record{Kind: shape.Square},
			Outline: orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		}},
	}

	dir := filepath.Join(t.TempDir(), "plots")
	files, err := Silhouettes(dir, planes)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "xy_plane.png"), files[0])

	for _, f := range files {
		decodePNG(t, f)
	}
}

func TestCurvatureHistogram(t *testing.T) {
	file := filepath.Join(t.TempDir(), "curvature.png")
	require.NoError(t, CurvatureHistogram(file, []float64{1, 1, 1, 0.5, 2}, 10))
	decodePNG(t, file)

	assert.ErrorIs(t, CurvatureHistogram(file, nil, 10), ErrNoValues)
}
