package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/loader"
	"github.com/philipparndt/meshshape/internal/pipeline"
	"github.com/philipparndt/meshshape/internal/polygon"
	"github.com/philipparndt/meshshape/internal/projection"
)

var planesCmd = &cobra.Command{
	Use:   "planes [file]",
	Short: "Classify the silhouette contours on the XY, XZ and YZ planes",
	Long: `Classify the silhouette contours on the XY, XZ and YZ planes.

Four-sided contours are tested for squares with the legacy rule by default,
which compares the area with the squared perimeter. That rule only holds for
degenerate outlines, so squares such as the corners of a cube are reported as
Rectangle. Use --square-rule side to compare the area with the squared side
length instead.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanes,
}

func init() {
	rootCmd.AddCommand(planesCmd)
}

func runPlanes(cmd *cobra.Command, args []string) error {
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
	planes, err := a.Planes(cmd.Context(), m)
	if err != nil {
		return err
	}

	for _, plane := range projection.Planes {
		shapes := planes[plane]
		fmt.Printf("%s (%d shapes)\n", plane, len(shapes))
		fmt.Println("====================")
		if len(shapes) == 0 {
			fmt.Println("  no contours")
		} else {
			fmt.Printf("%-6s %-18s %-14s %-14s %s\n", "Index", "Type", "Area", "Perimeter", "Dimensions")
		}
		for i, s := range shapes {
			fmt.Printf("%-6d %-18s %-14.6f %-14.6f %s\n", i, s.Kind, s.Area, s.Perimeter, formatDimensions(s.Dimensions))
		}
		fmt.Println()
	}
	return nil
}

func formatDimensions(d polygon.Dimensions) string {
	out := ""
	for _, k := range sortedKeys(d) {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%.6f", k, d[k])
	}
	return out
}
