package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/loader"
	"github.com/philipparndt/meshshape/pkg/analysis"
)

var (
	infoEdges    int
	infoShortest bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model",
	Long:  "Show dimensions, vertex and face counts, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoEdges, "edges", "e", 0, "List the N longest edges")
	infoCmd.Flags().BoolVarP(&infoShortest, "shortest", "s", false, "List the shortest edges instead")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loader.Load(cmd.Context(), filename)
	if err != nil {
		return err
	}
	result := analysis.Summarize(m)

	fmt.Println("Model Information")
	fmt.Println("====================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Edges: %d\n", len(result.Edges))
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Printf("  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Printf("  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, ""))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)

	if infoEdges <= 0 {
		return nil
	}
	edges := result.LongestEdges(infoEdges)
	title := "Longest Edges"
	if infoShortest {
		edges = result.ShortestEdges(infoEdges)
		title = "Shortest Edges"
	}

	fmt.Printf("\n%s:\n", title)
	fmt.Printf("  %-6s %-35s %-35s %-15s\n", "Face", "Start", "End", "Length")
	for _, e := range edges {
		fmt.Printf("  %-6d %-35s %-35s %.6f\n", e.Face, analysis.FormatVector(e.Start), analysis.FormatVector(e.End), e.Length)
	}
	return nil
}
