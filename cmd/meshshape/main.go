package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/config"
	"github.com/philipparndt/meshshape/version"
)

var (
	configFile string
	gridSize   int
	threshold  float64
	fillFaces  bool
	squareRule string
	workers    int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "meshshape",
	Short: "Classify the geometric primitives of triangle meshes",
	Long: `meshshape inspects STL, 3MF and OpenSCAD models. It traces the silhouette
of a model on the XY, XZ and YZ planes, classifies every contour and every
face into squares, rectangles, circles, cylinders, triangles and polygons,
and reports curvature statistics.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (.json or .toml)")
	flags.IntVar(&gridSize, "grid-size", 0, "Occupancy grid size in cells")
	flags.Float64Var(&threshold, "threshold", 0, "Relative tolerance of the face predicates")
	flags.BoolVar(&fillFaces, "fill-faces", false, "Scan-convert projected faces into the grid")
	flags.StringVar(&squareRule, "square-rule", "", "Square test for contours: legacy or side")
	flags.IntVarP(&workers, "workers", "w", 0, "Face classification workers")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

// loadConfig reads --config over the defaults and applies explicitly set
// flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("grid-size") {
		cfg.Contour.GridSize = gridSize
	}
	if flags.Changed("threshold") {
		cfg.Face.Threshold = threshold
	}
	if flags.Changed("fill-faces") {
		cfg.Contour.FillFaces = fillFaces
	}
	if flags.Changed("square-rule") {
		cfg.Polygon.SquareRule = squareRule
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
