package faceshape

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/internal/shape"
	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/philipparndt/meshshape/pkg/mesh"
)

// Result is the label of one face group.
type Result struct {
	Kind     shape.Kind
	Vertices []geometry.Vector3
	// Dimensions is nil for triangles.
	Dimensions map[string]float64
}

type resultJSON struct {
	Shape      string             `json:"shape"`
	Vertices   [][3]float64       `json:"vertices"`
	Dimensions map[string]float64 `json:"dimensions,omitempty"`
}

// MarshalJSON writes {"shape", "vertices", "dimensions"}.
func (r Result) MarshalJSON() ([]byte, error) {
	vs := make([][3]float64, len(r.Vertices))
	for i, v := range r.Vertices {
		vs[i] = [3]float64{v.X, v.Y, v.Z}
	}
	return json.Marshal(resultJSON{Shape: r.Kind.Slug(), Vertices: vs, Dimensions: r.Dimensions})
}

// Classifier applies the predicates in a fixed order.
type Classifier struct {
	cfg     config.Face
	workers int
}

// NewClassifier returns a classifier for cfg.Face running cfg.Workers
// goroutines.
func NewClassifier(cfg config.Config) Classifier {
	return Classifier{cfg: cfg.Face, workers: cfg.Workers}
}

// Classify labels a vertex set: cylinder, square, rectangle, circle, and
// triangle when nothing else matched.
func (c Classifier) Classify(vs []geometry.Vector3) Result {
	e := extents(vs)
	switch {
	case IsCylinder(vs, c.cfg):
		return Result{Kind: shape.Cylinder, Vertices: vs, Dimensions: map[string]float64{
			"height": e.Z,
			"radius": (e.X + e.Y) / 2,
		}}
	case IsSquare(vs, c.cfg):
		return Result{Kind: shape.Square, Vertices: vs, Dimensions: map[string]float64{
			"side_length": e.X,
		}}
	case IsRectangle(vs, c.cfg):
		return Result{Kind: shape.Rectangle, Vertices: vs, Dimensions: map[string]float64{
			"width":  e.X,
			"height": e.Y,
		}}
	case IsCircle(vs, c.cfg):
		return Result{Kind: shape.Circle, Vertices: vs, Dimensions: map[string]float64{
			"radius": meanDistance(vs, geometry.Centroid(vs)),
		}}
	}
	return Result{Kind: shape.Triangle, Vertices: vs}
}

func meanDistance(vs []geometry.Vector3, c geometry.Vector3) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v.Distance(c)
	}
	return sum / math.Max(1, float64(len(vs)))
}

// Group is a set of face indices classified together.
type Group struct {
	Faces []int
}

// PerFace returns one group per face of m.
func PerFace(m *mesh.Mesh) []Group {
	groups := make([]Group, m.FaceCount())
	for i := range groups {
		groups[i] = Group{Faces: []int{i}}
	}
	return groups
}

// VertexIndices returns the sorted unique vertex indices of g's faces.
func (g Group) VertexIndices(m *mesh.Mesh) ([]int, error) {
	seen := make(map[int]struct{}, len(g.Faces)*3)
	for _, fi := range g.Faces {
		if fi < 0 || fi >= len(m.Faces) {
			return nil, fmt.Errorf("%w: face %d (have %d)", mesh.ErrIndexOutOfRange, fi, len(m.Faces))
		}
		for _, vi := range m.Faces[fi] {
			if vi < 0 || vi >= len(m.Vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d", mesh.ErrIndexOutOfRange, fi, vi)
			}
			seen[vi] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for vi := range seen {
		out = append(out, vi)
	}
	sort.Ints(out)
	return out, nil
}

// ClassifyMesh labels every group of m. Results keep group order. Invalid
// face or vertex indices fail before any classification starts.
func (c Classifier) ClassifyMesh(ctx context.Context, m *mesh.Mesh, groups []Group) ([]Result, error) {
	sets := make([][]geometry.Vector3, len(groups))
	for i, g := range groups {
		idx, err := g.VertexIndices(m)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		vs := make([]geometry.Vector3, len(idx))
		for j, vi := range idx {
			vs[j] = m.Vertices[vi]
		}
		sets[i] = vs
	}

	workers := c.workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(sets))

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = c.Classify(sets[idx])
			}
		}()
	}

	var err error
send:
	for i := range sets {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	log.Printf("faceshape: classified %d groups with %d workers", len(results), workers)
	return results, nil
}

// Tally counts results per kind.
func Tally(results []Result) shape.Counts {
	counts := make(shape.Counts)
	for _, r := range results {
		counts[r.Kind]++
	}
	return counts
}
