package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/faceshape"
	"github.com/philipparndt/meshshape/internal/loader"
	"github.com/philipparndt/meshshape/internal/pipeline"
	"github.com/philipparndt/meshshape/internal/shape"
)

var facesCount int

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "Classify every face of a model",
	Long:  "Label each face as cylinder, square, rectangle, circle or triangle and print the tally per shape.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&facesCount, "count", "n", 20, "Number of faces to list (0 for none)")
}

func runFaces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	m, err := loader.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	results, err := a.Faces(cmd.Context(), m)
	if err != nil {
		return err
	}

	shown := results
	if facesCount >= 0 && len(shown) > facesCount {
		shown = shown[:facesCount]
	}
	if len(shown) > 0 {
		fmt.Printf("Faces (showing %d of %d)\n", len(shown), len(results))
		fmt.Println("====================")
		fmt.Printf("%-6s %-10s %s\n", "Face", "Shape", "Dimensions")
		for i, r := range shown {
			fmt.Printf("%-6d %-10s %s\n", i, r.Kind.Slug(), formatDimensions(r.Dimensions))
		}
		fmt.Println()
	}

	tally := faceshape.Tally(results)
	fmt.Println("Shape Statistics")
	fmt.Println("====================")
	fmt.Printf("%-10s %6s\n", "Shape", "Count")
	for _, k := range []shape.Kind{shape.Cylinder, shape.Square, shape.Rectangle, shape.Circle, shape.Triangle} {
		fmt.Printf("%-10s %6d\n", k.Slug(), tally[k])
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
