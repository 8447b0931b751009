package polygon

import (
	"encoding/json"
	"math"

	"github.com/paulmach/orb"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/internal/shape"
)

// Dimensions maps a dimension name, e.g. "radius", to its value.
type Dimensions map[string]float64

// Classifier assigns shape kinds to polygons.
type Classifier struct {
	cfg config.Polygon
}

// NewClassifier returns a classifier using the given thresholds.
func NewClassifier(cfg config.Polygon) Classifier {
	return Classifier{cfg: cfg}
}

// Classify runs the decision tree: triangle by vertex count, square or
// rectangle for four vertices, circle or polygon by compactness above that.
func (c Classifier) Classify(p Polygon) shape.Kind {
	if !p.Valid() {
		return shape.None
	}

	n := p.N()
	switch {
	case n == 3:
		return shape.Triangle
	case n == 4:
		if c.isSquare(p) {
			return shape.Square
		}
		return shape.Rectangle
	case n > 4:
		if Compactness(p) > c.cfg.CircularityThreshold {
			return shape.Circle
		}
		return shape.Polygon
	}
	return shape.Unknown
}

func (c Classifier) isSquare(p Polygon) bool {
	area, perim := p.Area(), p.Perimeter()
	if c.cfg.SquareRule == config.SquareRuleSide {
		side := perim / 4
		return math.Abs(area-side*side) < c.cfg.SquareTolerance
	}
	return math.Abs(area-perim*perim) < c.cfg.SquareTolerance
}

// Compactness is perimeter² / (4π·area). It is 1 for a circle and grows
// with elongation.
func Compactness(p Polygon) float64 {
	area := p.Area()
	if area == 0 {
		return 0
	}
	perim := p.Perimeter()
	return perim * perim / (4 * math.Pi * area)
}

// Dimensions measures p by vertex count: side lengths for triangles,
// length and width for quadrilaterals, equivalent radius otherwise.
func (c Classifier) Dimensions(p Polygon) Dimensions {
	switch p.N() {
	case 0:
		return Dimensions{}
	case 3:
		s := p.Sides()
		return Dimensions{
			"side_1": s[0],
			"side_2": s[1],
			"side_3": s[2],
			"height": math.Min(s[0], math.Min(s[1], s[2])),
			"base":   math.Max(s[0], math.Max(s[1], s[2])),
		}
	case 4:
		s := p.Sides()
		return Dimensions{"length": s[0], "width": s[1]}
	}
	r := math.Sqrt(p.Area() / math.Pi)
	return Dimensions{"radius": r, "diameter": 2 * r}
}

// Record is the classification of one contour.
type Record struct {
	Kind       shape.Kind
	Area       float64
	Perimeter  float64
	Dimensions Dimensions
}

// Record classifies and measures p.
func (c Classifier) Record(p Polygon) Record {
	return Record{
		Kind:       c.Classify(p),
		Area:       p.Area(),
		Perimeter:  p.Perimeter(),
		Dimensions: c.Dimensions(p),
	}
}

// MarshalJSON writes the record as one flat object:
// {"type", "area", "perimeter", <dimensions>}.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Dimensions)+3)
	for k, v := range r.Dimensions {
		out[k] = v
	}
	out["type"] = r.Kind.String()
	out["area"] = r.Area
	out["perimeter"] = r.Perimeter
	return json.Marshal(out)
}

// ClassifyAll validates and records every contour, skipping rejected ones.
func (c Classifier) ClassifyAll(contours [][]orb.Point) []Record {
	var out []Record
	for _, pts := range contours {
		p, ok := New(pts)
		if !ok {
			continue
		}
		out = append(out, c.Record(p))
	}
	return out
}
