package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hepview/hepplot/src/histogram"
)

// sampleFile is the on-disk input format: column-major data and
// normalization samples plus the shared binning and labeling. Weights are
// optional; a missing array means uniform weights over the norm sample.
type sampleFile struct {
	Labels  []string     `json:"labels"`
	Units   []string     `json:"units"`
	Bins    []int        `json:"bins"`
	Ranges  [][2]float64 `json:"ranges"`
	Data    [][]float64  `json:"data"`
	Norm    [][]float64  `json:"norm"`
	Weights []float64    `json:"weights"`
}

func loadSampleFile(path string) (*sampleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample file: %w", err)
	}
	var f sampleFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse sample file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// validate checks the per-dimension arrays line up; the plotting core does
// no validation of its own, so the file boundary is where malformed input
// gets rejected.
func (f *sampleFile) validate() error {
	dim := len(f.Labels)
	if dim == 0 {
		return fmt.Errorf("no labels")
	}
	if len(f.Bins) != dim || len(f.Ranges) != dim {
		return fmt.Errorf("labels/bins/ranges length mismatch: %d/%d/%d", dim, len(f.Bins), len(f.Ranges))
	}
	if len(f.Data) != dim || len(f.Norm) != dim {
		return fmt.Errorf("expected %d data and norm columns, got %d/%d", dim, len(f.Data), len(f.Norm))
	}
	for i := 1; i < dim; i++ {
		if len(f.Data[i]) != len(f.Data[0]) {
			return fmt.Errorf("data column %d length %d != %d", i, len(f.Data[i]), len(f.Data[0]))
		}
		if len(f.Norm[i]) != len(f.Norm[0]) {
			return fmt.Errorf("norm column %d length %d != %d", i, len(f.Norm[i]), len(f.Norm[0]))
		}
	}
	if f.Weights != nil && len(f.Weights) != len(f.Norm[0]) {
		return fmt.Errorf("weights length %d != norm length %d", len(f.Weights), len(f.Norm[0]))
	}
	return nil
}

func (f *sampleFile) dim() int { return len(f.Labels) }

func (f *sampleFile) ranges() []histogram.Range {
	out := make([]histogram.Range, len(f.Ranges))
	for i, r := range f.Ranges {
		out[i] = histogram.Range{Lo: r[0], Hi: r[1]}
	}
	return out
}

// weights returns the file's weight array, or uniform weights when absent.
func (f *sampleFile) weights() []float64 {
	if f.Weights != nil {
		return f.Weights
	}
	w := make([]float64, len(f.Norm[0]))
	for i := range w {
		w[i] = 1
	}
	return w
}
