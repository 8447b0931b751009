package polygon

import (
	"encoding/json"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/internal/shape"
)

func defaults() Classifier {
	return NewClassifier(config.Default().Polygon)
}

func regular(n int, r float64) []orb.Point {
	pts := make([]orb.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name   string
		points []orb.Point
	}{
		{"empty", nil},
		{"two points", []orb.Point{{0, 0}, {1, 1}}},
		{"duplicates only", []orb.Point{{0, 0}, {0, 0}, {1, 1}, {0, 0}}},
		{"collinear", []orb.Point{{0, 0}, {1, 0}, {2, 0}, {0, 0}}},
		{"bowtie", []orb.Point{{0, 0}, {2, 2}, {2, 0}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := New(tt.points)
			assert.False(t, ok)
			assert.False(t, p.Valid())
		})
	}
}

func TestNewOrientsCounterClockwise(t *testing.T) {
	cw := []orb.Point{{0, 0}, {0, 1}, {2, 1}, {2, 0}, {0, 0}}
	p, ok := New(cw)
	require.True(t, ok)
	assert.Equal(t, orb.CCW, p.Ring().Orientation())
	assert.Equal(t, 4, p.N())
	assert.InDelta(t, 2, p.Area(), 1e-12)
	assert.InDelta(t, 6, p.Perimeter(), 1e-12)
}

func TestRecordIgnoresOrientation(t *testing.T) {
	tests := []struct {
		name   string
		points []orb.Point
	}{
		{"rectangle", []orb.Point{{0, 0}, {2, 0}, {2, 1}, {0, 1}}},
		{"rectangle rotated start", []orb.Point{{2, 1}, {0, 1}, {0, 0}, {2, 0}}},
		{"scalene triangle", []orb.Point{{0, 0}, {3, 0}, {0, 4}}},
		{"closed pentagon", []orb.Point{{0, 0}, {4, 0}, {5, 2}, {2, 4}, {-1, 2}, {0, 0}}},
	}
	c := defaults()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reversed := slices.Clone(tt.points)
			slices.Reverse(reversed)

			a, ok := New(tt.points)
			require.True(t, ok)
			b, ok := New(reversed)
			require.True(t, ok)

			if diff := cmp.Diff(c.Record(a), c.Record(b), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("records differ (-forward +reversed):\n%s", diff)
			}
			assert.Equal(t, a.Ring(), b.Ring())
		})
	}
}

func TestNewStartsAtLowestVertex(t *testing.T) {
	p, ok := New([]orb.Point{{0, 1}, {2, 1}, {2, 0}, {0, 0}})
	require.True(t, ok)
	assert.Equal(t, orb.Point{0, 0}, p.Vertex(0))
	assert.Equal(t, orb.Point{2, 0}, p.Vertex(1))

	d := defaults().Dimensions(p)
	assert.InDelta(t, 2, d["length"], 1e-12)
	assert.InDelta(t, 1, d["width"], 1e-12)

	tri, ok := New([]orb.Point{{0, 4}, {3, 0}, {0, 0}})
	require.True(t, ok)
	d = defaults().Dimensions(tri)
	assert.InDelta(t, 3, d["side_1"], 1e-12)
	assert.InDelta(t, 5, d["side_2"], 1e-12)
	assert.InDelta(t, 4, d["side_3"], 1e-12)
}

func TestClassifyTriangle(t *testing.T) {
	p, ok := New([]orb.Point{{0, 0}, {3, 0}, {0, 4}})
	require.True(t, ok)

	r := defaults().Record(p)
	assert.Equal(t, shape.Triangle, r.Kind)
	assert.InDelta(t, 6, r.Area, 1e-12)
	assert.InDelta(t, 12, r.Perimeter, 1e-12)
	assert.InDelta(t, 3, r.Dimensions["height"], 1e-12)
	assert.InDelta(t, 5, r.Dimensions["base"], 1e-12)

	sides := []float64{r.Dimensions["side_1"], r.Dimensions["side_2"], r.Dimensions["side_3"]}
	assert.ElementsMatch(t, []float64{3, 4, 5}, sides)
}

func TestClassifyQuadrilateral(t *testing.T) {
	// Diamond traced around a single occupied cell.
	diamond := []orb.Point{{-0.5, 0}, {0, -0.5}, {0.5, 0}, {0, 0.5}, {-0.5, 0}}
	p, ok := New(diamond)
	require.True(t, ok)

	legacy := defaults()
	assert.Equal(t, shape.Rectangle, legacy.Classify(p))

	cfg := config.Default().Polygon
	cfg.SquareRule = config.SquareRuleSide
	assert.Equal(t, shape.Square, NewClassifier(cfg).Classify(p))

	d := legacy.Dimensions(p)
	assert.InDelta(t, math.Sqrt(0.5), d["length"], 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), d["width"], 1e-12)

	rect, ok := New([]orb.Point{{0, 0}, {4, 0}, {4, 1}, {0, 1}})
	require.True(t, ok)
	assert.Equal(t, shape.Rectangle, NewClassifier(cfg).Classify(rect))
	d = legacy.Dimensions(rect)
	assert.InDelta(t, 4, d["length"], 1e-12)
	assert.InDelta(t, 1, d["width"], 1e-12)
}

func TestClassifyCircle(t *testing.T) {
	p, ok := New(regular(64, 10))
	require.True(t, ok)

	r := defaults().Record(p)
	assert.Equal(t, shape.Circle, r.Kind)
	assert.InDelta(t, 10, r.Dimensions["radius"], 0.05)
	assert.InDelta(t, 2*r.Dimensions["radius"], r.Dimensions["diameter"], 1e-12)
}

func TestCompactnessScaleInvariant(t *testing.T) {
	small, ok := New(regular(12, 1))
	require.True(t, ok)
	large, ok := New(regular(12, 250))
	require.True(t, ok)

	assert.InDelta(t, Compactness(small), Compactness(large), 1e-9)
	assert.Greater(t, Compactness(small), 1.0)
}

func TestClassifyPolygon(t *testing.T) {
	cfg := config.Default().Polygon
	cfg.CircularityThreshold = 10

	p, ok := New(regular(6, 1))
	require.True(t, ok)
	assert.Equal(t, shape.Polygon, NewClassifier(cfg).Classify(p))
}

func TestClassifyZeroPolygon(t *testing.T) {
	c := defaults()
	assert.Equal(t, shape.None, c.Classify(Polygon{}))
	assert.Empty(t, c.Dimensions(Polygon{}))
	assert.Zero(t, Polygon{}.Area())
}

func TestRecordJSONIsFlat(t *testing.T) {
	r := Record{Kind: shape.Circle, Area: 3, Perimeter: 6, Dimensions: Dimensions{"radius": 1, "diameter": 2}}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{
		"type":      "Circle",
		"area":      3.0,
		"perimeter": 6.0,
		"radius":    1.0,
		"diameter":  2.0,
	}, got)
}

func TestClassifyAllSkipsRejected(t *testing.T) {
	contours := [][]orb.Point{
		{{0, 0}, {1, 0}},
		{{0, 0}, {3, 0}, {0, 4}, {0, 0}},
	}
	records := defaults().ClassifyAll(contours)
	require.Len(t, records, 1)
	assert.Equal(t, shape.Triangle, records[0].Kind)
}
