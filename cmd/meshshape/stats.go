package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/loader"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/pkg/analysis"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print vertex and face counts and curvature statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := loader.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	s, err := analysis.AnalyzeMesh(m)
	if err != nil {
		return err
	}

	if statsJSON {
		return report.WriteJSON(cmd.OutOrStdout(), s)
	}

	fmt.Println("Feature Statistics")
	fmt.Println("====================")
	fmt.Printf("  Vertices: %d\n", s.VertexCount)
	fmt.Printf("  Faces: %d\n", s.FaceCount)
	fmt.Printf("  Curvature mean: %.6f\n", s.CurvatureMean)
	fmt.Printf("  Curvature std: %.6f\n", s.CurvatureStd)
	fmt.Printf("  Curvature min: %.6f\n", s.CurvatureMin)
	fmt.Printf("  Curvature max: %.6f\n", s.CurvatureMax)
	return nil
}
