// Package plot renders silhouettes and curvature distributions as PNG
// images.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/philipparndt/meshshape/internal/projection"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/internal/shape"
)

// ErrNoValues is returned when a histogram has nothing to show.
var ErrNoValues = errors.New("no values to plot")

var palette = map[shape.Kind]color.RGBA{
	shape.Triangle:  {R: 0, G: 170, B: 170, A: 255},
	shape.Square:    {R: 0, G: 160, B: 0, A: 255},
	shape.Rectangle: {R: 0, G: 0, B: 220, A: 255},
	shape.Circle:    {R: 200, G: 170, B: 0, A: 255},
	shape.Polygon:   {R: 140, G: 0, B: 140, A: 255},
	shape.Cylinder:  {R: 220, G: 0, B: 0, A: 255},
}

func colorOf(k shape.Kind) color.Color {
	if c, ok := palette[k]; ok {
		return c
	}
	return color.Black
}

// Silhouette draws the shape outlines of one plane and saves them to file.
func Silhouette(file string, plane projection.Plane, shapes []report.Shape) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - %d shapes", plane, len(shapes))
	p.X.Label.Text = axisLabels(plane)[0]
	p.Y.Label.Text = axisLabels(plane)[1]

	seen := make(map[shape.Kind]bool)
	for _, s := range shapes {
		if len(s.Outline) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.Outline))
		for i, pt := range s.Outline {
			pts[i] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = colorOf(s.Kind)
		line.Width = vg.Points(1)
		p.Add(line)

		if !seen[s.Kind] {
			p.Legend.Add(s.Kind.String(), line)
			seen[s.Kind] = true
		}
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save %s silhouette: %w", plane, err)
	}
	return nil
}

func axisLabels(plane projection.Plane) [2]string {
	switch plane {
	case projection.XZ:
		return [2]string{"X", "Z"}
	case projection.YZ:
		return [2]string{"Y", "Z"}
	}
	return [2]string{"X", "Y"}
}

// Silhouettes writes one PNG per plane into dir and returns the file names.
func Silhouettes(dir string, planes report.Planes) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var files []string
	for _, plane := range projection.Planes {
		name := strings.ToLower(strings.ReplaceAll(plane.String(), " ", "_")) + ".png"
		file := filepath.Join(dir, name)
		if err := Silhouette(file, plane, planes[plane]); err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

// CurvatureHistogram saves a histogram of values with the given number of
// bins.
func CurvatureHistogram(file string, values []float64, bins int) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	if bins < 1 {
		bins = 1
	}

	p := plot.New()
	p.Title.Text = "Curvature distribution"
	p.X.Label.Text = "Curvature"
	p.Y.Label.Text = "Faces"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save curvature histogram: %w", err)
	}
	return nil
}
