package contour

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshshape/internal/config"
)

func TestNewTransform(t *testing.T) {
	tr, ok := NewTransform(orb.Bound{Min: orb.Point{-1, 2}, Max: orb.Point{1, 6}}, 5)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2, 1}, tr.Scale)

	g := tr.ToGrid(orb.Point{1, 6})
	assert.InDelta(t, 4, g[0], 1e-12)
	assert.InDelta(t, 4, g[1], 1e-12)

	w := tr.ToWorld(g)
	assert.InDelta(t, 1, w[0], 1e-12)
	assert.InDelta(t, 6, w[1], 1e-12)

	_, ok = NewTransform(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 0}}, 5)
	assert.False(t, ok)
}

func TestRasterize(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 1}, {0.5, 0.5}, {0, 1}}
	g, _, ok := Rasterize(points, 3)
	require.True(t, ok)
	assert.True(t, g.At(0, 0))
	assert.True(t, g.At(2, 2))
	assert.True(t, g.At(1, 1))
	assert.True(t, g.At(0, 2))
	assert.Equal(t, 4, g.Occupied())
	assert.False(t, g.At(-1, 0))
	assert.False(t, g.At(3, 0))
}

func TestRasterizeDegenerate(t *testing.T) {
	for name, points := range map[string][]orb.Point{
		"empty":     nil,
		"single":    {{1, 1}},
		"collinear": {{0, 0}, {1, 0}, {2, 0}},
		"vertical":  {{3, 0}, {3, 1}},
		"diagonal":  {{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		"sloped":    {{2, 1}, {0, 0}, {2, 1}, {-4, -2}, {6, 3}},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, ok := Rasterize(points, 10)
			assert.False(t, ok)
			assert.Empty(t, Extract(points, nil, config.Contour{GridSize: 10}))
		})
	}
}

func TestExtractDiagonalLine(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	assert.Empty(t, Extract(points, nil, config.Contour{GridSize: 1000}))

	// One point off the line is enough for a real outline.
	points = append(points, orb.Point{3, 0})
	_, _, ok := Rasterize(points, 1000)
	assert.True(t, ok)
}

func TestTraceSinglePixel(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1)

	lines := Trace(g)
	require.Len(t, lines, 1)
	line := lines[0]
	require.Len(t, line, 5)
	assert.Equal(t, line[0], line[4])

	assert.ElementsMatch(t, []orb.Point{{0.5, 1}, {1.5, 1}, {1, 0.5}, {1, 1.5}}, line[:4])
	assert.InDelta(t, 0.5, math.Abs(planar.Area(orb.Ring(line))), 1e-12)
}

func TestTraceBlock(t *testing.T) {
	g := NewGrid(6)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			g.Set(x, y)
		}
	}

	lines := Trace(g)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, line[0], line[len(line)-1])

	// 3x3 block: boundary grows half a cell outwards with cut corners.
	assert.InDelta(t, 9-0.5, math.Abs(planar.Area(orb.Ring(line))), 1e-9)
}

func TestTraceSaddleKeepsCornersApart(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0)
	g.Set(1, 1)

	assert.Len(t, Trace(g), 2)
}

func TestTraceEmpty(t *testing.T) {
	assert.Empty(t, Trace(NewGrid(4)))
	assert.Empty(t, Trace(nil))
}

func TestTraceAllOccupied(t *testing.T) {
	g := NewGrid(4)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			g.Set(x, y)
		}
	}
	lines := Trace(g)
	require.Len(t, lines, 1)
	for _, p := range lines[0] {
		assert.True(t, p[0] >= -0.5 && p[0] <= 3.5)
		assert.True(t, p[1] >= -0.5 && p[1] <= 3.5)
	}
}

func TestExtractCubeCorners(t *testing.T) {
	// Vertices of a unit cube projected onto XY.
	points := []orb.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}

	contours := Extract(points, nil, config.Contour{GridSize: 1000})
	require.Len(t, contours, 4)
	for _, c := range contours {
		assert.True(t, c.Closed())
		assert.Len(t, c.Points, 5)
	}

	// First contour surrounds the origin pixel.
	world := contours[0].ToWorld()
	center := orb.MultiPoint(world).Bound().Center()
	assert.InDelta(t, 0, center[0], 1e-9)
	assert.InDelta(t, 0, center[1], 1e-9)
}

func TestExtractFillFaces(t *testing.T) {
	points := []orb.Point{{0, 0}, {10, 0}, {0, 10}}
	faces := [][3]int{{0, 1, 2}}

	assert.Len(t, Extract(points, faces, config.Contour{GridSize: 11}), 3)

	filled := Extract(points, faces, config.Contour{GridSize: 11, FillFaces: true})
	require.Len(t, filled, 1)
	assert.True(t, filled[0].Closed())
}

func TestFillTriangle(t *testing.T) {
	g := NewGrid(11)
	g.FillTriangle(orb.Point{0, 0}, orb.Point{10, 0}, orb.Point{0, 10})

	// Lattice points with x+y <= 10.
	assert.Equal(t, 66, g.Occupied())
	assert.True(t, g.At(5, 5))
	assert.False(t, g.At(6, 5))
}

func TestExtractSkipsBadFaces(t *testing.T) {
	points := []orb.Point{{0, 0}, {4, 0}, {0, 4}}
	faces := [][3]int{{0, 1, 7}}

	contours := Extract(points, faces, config.Contour{GridSize: 5, FillFaces: true})
	assert.Len(t, contours, 3)
}
