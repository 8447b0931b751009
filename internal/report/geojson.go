package report

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/philipparndt/meshshape/internal/projection"
)

// FeatureCollection converts the plane shapes into one polygon feature per
// shape, carrying the plane and the record as properties.
func (p Planes) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, plane := range projection.Planes {
		for i, s := range p[plane] {
			if len(s.Outline) == 0 {
				continue
			}
			f := geojson.NewFeature(orb.Polygon{s.Outline})
			f.Properties = geojson.Properties{
				"plane":     plane.String(),
				"index":     i,
				"type":      s.Kind.String(),
				"area":      s.Area,
				"perimeter": s.Perimeter,
			}
			for k, v := range s.Dimensions {
				f.Properties[k] = v
			}
			fc.Append(f)
		}
	}
	return fc
}

// WriteGeoJSON writes the plane shapes as an indented FeatureCollection.
func WriteGeoJSON(w io.Writer, p Planes) error {
	data, err := json.MarshalIndent(p.FeatureCollection(), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
