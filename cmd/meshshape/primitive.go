package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/pipeline"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/pkg/mesh"
	"github.com/philipparndt/meshshape/pkg/primitive"
	"github.com/philipparndt/meshshape/pkg/stl"
)

var (
	primitiveCells int
	primitiveSTL   string
	primitiveASCII bool
)

var primitiveCmd = &cobra.Command{
	Use:   "primitive cube|box|cylinder|sphere [dimensions...]",
	Short: "Generate a primitive solid and classify it",
	Long: `Generate a solid and print its report.

  cube SIZE                 exact 12-triangle cube
  box X Y Z                 tessellated box
  cylinder HEIGHT RADIUS    tessellated cylinder along Z
  sphere RADIUS             tessellated sphere`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrimitive,
}

func init() {
	rootCmd.AddCommand(primitiveCmd)

	primitiveCmd.Flags().IntVar(&primitiveCells, "cells", primitive.DefaultCells, "Marching cubes resolution")
	primitiveCmd.Flags().StringVar(&primitiveSTL, "stl", "", "Also write the mesh to this STL file")
	primitiveCmd.Flags().BoolVar(&primitiveASCII, "ascii", false, "Write ASCII instead of binary STL")
}

func parseDims(kind string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s needs %d dimension(s), got %d", kind, want, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

func buildPrimitive(kind string, args []string) (*mesh.Mesh, error) {
	switch kind {
	case "cube":
		d, err := parseDims(kind, args, 1)
		if err != nil {
			return nil, err
		}
		return primitive.Cube(d[0]), nil
	case "box":
		d, err := parseDims(kind, args, 3)
		if err != nil {
			return nil, err
		}
		return primitive.Box(d[0], d[1], d[2], primitiveCells)
	case "cylinder":
		d, err := parseDims(kind, args, 2)
		if err != nil {
			return nil, err
		}
		return primitive.Cylinder(d[0], d[1], primitiveCells)
	case "sphere":
		d, err := parseDims(kind, args, 1)
		if err != nil {
			return nil, err
		}
		return primitive.Sphere(d[0], primitiveCells)
	}
	return nil, fmt.Errorf("unknown primitive %q", kind)
}

func runPrimitive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	m, err := buildPrimitive(args[0], args[1:])
	if err != nil {
		return err
	}
	if primitiveSTL != "" {
		if err := stl.FromMesh(m).Save(primitiveSTL, primitiveASCII); err != nil {
			return err
		}
	}

	r, err := a.Run(cmd.Context(), m)
	if err != nil {
		return err
	}
	return report.WriteJSON(cmd.OutOrStdout(), r)
}
