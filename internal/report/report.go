// Package report bundles analysis results and writes them as JSON or
// GeoJSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb"

	"github.com/philipparndt/meshshape/internal/faceshape"
	"github.com/philipparndt/meshshape/internal/polygon"
	"github.com/philipparndt/meshshape/internal/projection"
	"github.com/philipparndt/meshshape/internal/shape"
	"github.com/philipparndt/meshshape/pkg/analysis"
)

// Shape is a classified contour. Outline is the contour ring in plane
// coordinates.
type Shape struct {
	polygon.Record
	Outline orb.Ring
}

// MarshalJSON writes the flat record; the outline is GeoJSON only.
func (s Shape) MarshalJSON() ([]byte, error) {
	return s.Record.MarshalJSON()
}

// Planes holds the shapes found on each projection plane.
type Planes map[projection.Plane][]Shape

// MarshalJSON writes every canonical plane, including empty ones.
func (p Planes) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Shape, len(projection.Planes))
	for _, plane := range projection.Planes {
		shapes := p[plane]
		if shapes == nil {
			shapes = []Shape{}
		}
		out[plane.String()] = shapes
	}
	return json.Marshal(out)
}

// Report is the full analysis of one mesh.
type Report struct {
	Source string             `json:"source,omitempty"`
	Planes Planes             `json:"planes"`
	Faces  []faceshape.Result `json:"faces"`
	Stats  analysis.Stats     `json:"stats"`
	Tally  shape.Counts       `json:"tally"`
}

// WriteJSON writes v indented.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
