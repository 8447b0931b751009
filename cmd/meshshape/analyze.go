package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshshape/internal/loader"
	"github.com/philipparndt/meshshape/internal/pipeline"
	"github.com/philipparndt/meshshape/internal/plot"
	"github.com/philipparndt/meshshape/internal/report"
	"github.com/philipparndt/meshshape/pkg/analysis"
	"github.com/philipparndt/meshshape/pkg/watcher"
)

var (
	analyzeFormat  string
	analyzeOut     string
	analyzePlotDir string
	analyzeWatch   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Write the full shape report of a model",
	Long:  "Run the planar and per-face classification and the curvature statistics, and write the report as JSON or GeoJSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "Output format: json or geojson")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzePlotDir, "plot-dir", "", "Directory for silhouette and curvature PNGs")
	analyzeCmd.Flags().BoolVar(&analyzeWatch, "watch", false, "Re-run when the model or its dependencies change")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != "json" && analyzeFormat != "geojson" {
		return fmt.Errorf("unknown format %q (want json or geojson)", analyzeFormat)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filename := args[0]
	if err := analyzeOnce(ctx, a, filename); err != nil {
		return err
	}
	if !analyzeWatch {
		return nil
	}
	return watch(ctx, a, filename)
}

func analyzeOnce(ctx context.Context, a *pipeline.Analyzer, filename string) error {
	m, err := loader.Load(ctx, filename)
	if err != nil {
		return err
	}
	r, err := a.Run(ctx, m)
	if err != nil {
		return err
	}
	r.Source = filename

	var w io.Writer = os.Stdout
	if analyzeOut != "" {
		f, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if analyzeFormat == "geojson" {
		err = report.WriteGeoJSON(w, r.Planes)
	} else {
		err = report.WriteJSON(w, r)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if analyzePlotDir != "" {
		files, err := plot.Silhouettes(analyzePlotDir, r.Planes)
		if err != nil {
			return err
		}
		hist := filepath.Join(analyzePlotDir, "curvature.png")
		if err := plot.CurvatureHistogram(hist, analysis.CurvatureProxy(m), 20); err != nil {
			return err
		}
		for _, f := range append(files, hist) {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", f)
		}
	}
	return nil
}

func watch(ctx context.Context, a *pipeline.Analyzer, filename string) error {
	deps, err := loader.Dependencies(filename)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch(deps, func(changed string) {
		fmt.Fprintf(os.Stderr, "%s changed, re-analyzing\n", changed)
		if err := analyzeOnce(ctx, a, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Watching %d file(s), press Ctrl+C to stop\n", len(deps))
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
