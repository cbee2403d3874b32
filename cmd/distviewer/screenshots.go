package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hepview/hepplot/src/display"
	"github.com/hepview/hepplot/src/plotlog"
)

// RunScreenshotsMode renders every panel of the display for the given
// sample file and writes them as PNGs under outDir. It runs headlessly
// without creating a UI window.
func RunScreenshotsMode(filePath, outDir, colormap string) error {
	if filePath == "" {
		return fmt.Errorf("screenshots mode requires -file")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	f, err := loadSampleFile(filePath)
	if err != nil {
		return err
	}

	rows, cols := display.GridShape(f.dim())
	panels := display.NewPanelGrid(rows, cols, 0, 0)
	d := display.New(
		display.NewSamples(f.Data), display.NewSamples(f.Norm),
		f.Bins, f.ranges(), f.Labels, panels,
		display.Options{Units: f.Units, Colormap: colormap},
	)
	d.Draw(f.weights())

	for r, row := range d.Panels() {
		for c, surf := range row {
			name := fmt.Sprintf("panel_%d_%d.png", r, c)
			outPath := filepath.Join(outDir, name)
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := surf.Render(out); err != nil {
				out.Close()
				return fmt.Errorf("render %s: %w", name, err)
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
		}
	}
	plotlog.Infof("wrote %d panels to %s", rows*cols, outDir)
	return nil
}
