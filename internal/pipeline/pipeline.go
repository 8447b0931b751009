// Package pipeline runs the planar and per-face analyses of a mesh.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/paulmach/orb"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/internal/contour"
	"github.com/philipparndt/meshshape/internal/faceshape"
	"github.com/philipparndt/meshshape/internal/polygon"
	"github.com/philipparndt/meshshape/internal/projection"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/pkg/analysis"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// Analyzer holds the classifiers for one configuration.
type Analyzer struct {
	cfg      config.Config
	polygons polygon.Classifier
	faces    faceshape.Classifier
}

// New validates cfg and returns an analyzer.
func New(cfg config.Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		cfg:      cfg,
		polygons: polygon.NewClassifier(cfg.Polygon),
		faces:    faceshape.NewClassifier(cfg),
	}, nil
}

func check(m *mesh.Mesh) error {
	if m.IsEmpty() {
		return mesh.ErrEmptyMesh
	}
	return m.Validate()
}

// Plane traces and classifies the silhouette of m on one plane.
func (a *Analyzer) Plane(m *mesh.Mesh, plane projection.Plane) []report.Shape {
	points := projection.Project(m.Vertices, plane)
	contours := contour.Extract(points, m.Faces, a.cfg.Contour)

	shapes := make([]report.Shape, 0, len(contours))
	for _, c := range contours {
		p, ok := polygon.New(c.Points)
		if !ok {
			continue
		}
		outline := make(orb.Ring, len(p.Ring()))
		for i, pt := range p.Ring() {
			outline[i] = c.Transform.ToWorld(pt)
		}
		shapes = append(shapes, report.Shape{Record: a.polygons.Record(p), Outline: outline})
	}
	log.Printf("pipeline: %s: %d contours, %d shapes", plane, len(contours), len(shapes))
	return shapes
}

// Planes analyzes every canonical plane concurrently.
func (a *Analyzer) Planes(ctx context.Context, m *mesh.Mesh) (report.Planes, error) {
	if err := check(m); err != nil {
		return nil, err
	}

	results := make([][]report.Shape, len(projection.Planes))
	var wg sync.WaitGroup
	for i, plane := range projection.Planes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i] = a.Plane(m, plane)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(report.Planes, len(results))
	for i, plane := range projection.Planes {
		out[plane] = results[i]
	}
	return out, nil
}

// Faces classifies every face of m on its own.
func (a *Analyzer) Faces(ctx context.Context, m *mesh.Mesh) ([]faceshape.Result, error) {
	if err := check(m); err != nil {
		return nil, err
	}
	return a.faces.ClassifyMesh(ctx, m, faceshape.PerFace(m))
}

// Run produces the full report for m.
func (a *Analyzer) Run(ctx context.Context, m *mesh.Mesh) (*report.Report, error) {
	if err := check(m); err != nil {
		return nil, err
	}
	start := time.Now()

	planes, err := a.Planes(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("planes: %w", err)
	}
	log.Printf("pipeline: planes done in %v", time.Since(start))

	faces, err := a.Faces(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("faces: %w", err)
	}

	stats, err := analysis.AnalyzeMesh(m)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	log.Printf("pipeline: %s analyzed in %v", m.Name, time.Since(start))

	return &report.Report{
		Source: m.Name,
		Planes: planes,
		Faces:  faces,
		Stats:  stats,
		Tally:  faceshape.Tally(faces),
	}, nil
}
