// Package config holds the tunable thresholds of the classifiers.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Square rules for four-vertex contours.
const (
	// SquareRuleLegacy compares area against perimeter squared.
	SquareRuleLegacy = "legacy"
	// SquareRuleSide compares area against the squared mean side length.
	SquareRuleSide = "side"
)

// Contour configures rasterization and tracing.
type Contour struct {
	// GridSize is the side length of the occupancy grid in cells.
	GridSize int `json:"grid_size" toml:"grid_size"`
	// FillFaces scan-converts projected faces in addition to vertices.
	FillFaces bool `json:"fill_faces" toml:"fill_faces"`
}

// Polygon configures the contour classifier.
type Polygon struct {
	SquareRule           string  `json:"square_rule" toml:"square_rule"`
	SquareTolerance      float64 `json:"square_tolerance" toml:"square_tolerance"`
	CircularityThreshold float64 `json:"circularity_threshold" toml:"circularity_threshold"`
}

// Face configures the per-face predicates.
type Face struct {
	// Threshold is the relative tolerance of every predicate.
	Threshold float64 `json:"threshold" toml:"threshold"`
	// AbsTolerance is added to the relative tolerance when comparing lengths.
	AbsTolerance float64 `json:"abs_tolerance" toml:"abs_tolerance"`
}

// Config is the root configuration.
type Config struct {
	Contour Contour `json:"contour" toml:"contour"`
	Polygon Polygon `json:"polygon" toml:"polygon"`
	Face    Face    `json:"face" toml:"face"`
	// Workers bounds per-face classification concurrency.
	Workers int `json:"workers" toml:"workers"`
}

// Default returns the reference thresholds.
func Default() Config {
	return Config{
		Contour: Contour{
			GridSize: 1000,
		},
		Polygon: Polygon{
			SquareRule:           SquareRuleLegacy,
			SquareTolerance:      1e-5,
			CircularityThreshold: 0.8,
		},
		Face: Face{
			Threshold:    0.1,
			AbsTolerance: 1e-8,
		},
		Workers: runtime.NumCPU(),
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Contour.GridSize < 2:
		return fmt.Errorf("%w: contour.grid_size must be at least 2, got %d", ErrInvalid, c.Contour.GridSize)
	case c.Polygon.SquareRule != SquareRuleLegacy && c.Polygon.SquareRule != SquareRuleSide:
		return fmt.Errorf("%w: polygon.square_rule must be %q or %q, got %q", ErrInvalid, SquareRuleLegacy, SquareRuleSide, c.Polygon.SquareRule)
	case c.Polygon.SquareTolerance < 0:
		return fmt.Errorf("%w: polygon.square_tolerance must not be negative", ErrInvalid)
	case c.Polygon.CircularityThreshold <= 0:
		return fmt.Errorf("%w: polygon.circularity_threshold must be positive", ErrInvalid)
	case c.Face.Threshold < 0:
		return fmt.Errorf("%w: face.threshold must not be negative", ErrInvalid)
	case c.Face.AbsTolerance < 0:
		return fmt.Errorf("%w: face.abs_tolerance must not be negative", ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// Load reads a .json or .toml file over the defaults, so omitted fields keep
// their default values, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported extension %q (want .json or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
