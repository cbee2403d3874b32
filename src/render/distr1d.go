package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hepview/hepplot/src/histogram"
	"github.com/hepview/hepplot/src/plotstyle"
)

type seriesKind int

const (
	seriesSingle seriesKind = iota
	seriesMulti
	seriesMultiWeighted
)

// Series1D is the tagged input form of PlotDistr1D, resolved once at the
// call boundary: a single sample array, a list of parallel sample arrays
// sharing one binning, or a single sample array with a list of weight
// arrays (one drawn series per weight array).
type Series1D struct {
	kind        seriesKind
	samples     []float64
	list        [][]float64
	weights     []float64
	weightsList [][]float64
}

// Single wraps one sample array.
func Single(samples []float64) Series1D {
	return Series1D{kind: seriesSingle, samples: samples}
}

// SingleWeighted wraps one sample array with per-sample weights.
func SingleWeighted(samples, weights []float64) Series1D {
	return Series1D{kind: seriesSingle, samples: samples, weights: weights}
}

// MultiSeries wraps several sample arrays drawn as overlaid series.
func MultiSeries(arrays [][]float64) Series1D {
	return Series1D{kind: seriesMulti, list: arrays}
}

// MultiSeriesWeighted is MultiSeries with one weight array applied to
// every series.
func MultiSeriesWeighted(arrays [][]float64, weights []float64) Series1D {
	return Series1D{kind: seriesMulti, list: arrays, weights: weights}
}

// MultiWeighted wraps one sample array with several weight arrays, one
// overlaid series per weighting.
func MultiWeighted(samples []float64, weightsList [][]float64) Series1D {
	return Series1D{kind: seriesMultiWeighted, samples: samples, weightsList: weightsList}
}

// Count returns the number of series the input resolves to.
func (in Series1D) Count() int {
	switch in.kind {
	case seriesMulti:
		return len(in.list)
	case seriesMultiWeighted:
		return len(in.weightsList)
	default:
		return 1
	}
}

// Options1D configures a 1D distribution panel.
type Options1D struct {
	Units  string
	Colors []drawing.Color // per-series overrides
	Legend []string        // per-series legend labels
	// Errors draws bin-center markers with sqrt(count) bars instead of a
	// step line; honored for single-array input only.
	Errors bool
	Title  string
	// SuppressTitle drops the default "<label> distribution" title.
	SuppressTitle bool
}

// PlotDistr1D bins the input and draws it on the surface as filled step
// histograms (or error-bar markers in Errors mode). The y axis is clamped
// to start at zero.
func PlotDistr1D(s *Surface, input Series1D, bins int, rng histogram.Range, label string, opts Options1D) {
	maxY := 0.0
	addStep := func(i int, counts, edges []float64, col drawing.Color) {
		s.addSeries(stepSeriesFilled(legendLabel(opts.Legend, i), edges, counts, col))
		for _, v := range counts {
			if v > maxY {
				maxY = v
			}
		}
	}

	switch input.kind {
	case seriesMultiWeighted:
		for i, w := range input.weightsList {
			counts, edges := histogram.Hist1D(input.samples, bins, rng, w)
			addStep(i, counts, edges, seriesColor(opts.Colors, i))
		}
	case seriesMulti:
		for i, a := range input.list {
			counts, edges := histogram.Hist1D(a, bins, rng, input.weights)
			addStep(i, counts, edges, seriesColor(opts.Colors, i))
		}
	default:
		col := plotstyle.DataColor
		if len(opts.Colors) > 0 {
			col = opts.Colors[0]
		}
		counts, edges := histogram.Hist1D(input.samples, bins, rng, input.weights)
		if opts.Errors {
			centers := histogram.Centers(edges)
			errs := make([]float64, len(counts))
			for i, v := range counts {
				errs[i] = math.Sqrt(v)
				if v+errs[i] > maxY {
					maxY = v + errs[i]
				}
			}
			s.addSeries(errorBarSeries(legendLabel(opts.Legend, 0), centers, counts, errs, col)...)
		} else {
			addStep(0, counts, edges, col)
		}
	}

	s.xRange = &chart.ContinuousRange{Min: rng.Lo, Max: rng.Hi}
	if maxY <= 0 {
		maxY = 1
	}
	_, nMax := niceAxisBounds(0, maxY)
	s.yRange = &chart.ContinuousRange{Min: 0, Max: nMax}
	s.SetLabels(
		plotstyle.AxisTitle(label, opts.Units),
		plotstyle.YAxisTitle(rng, bins, opts.Units),
	)
	switch {
	case opts.SuppressTitle:
	case opts.Title != "":
		s.SetTitle(opts.Title)
	default:
		s.SetTitle(label + " distribution")
	}
	if len(opts.Legend) > 0 {
		s.showLegend = true
	}
}

// seriesColor picks the i-th caller color or falls back to the default
// series wheel.
func seriesColor(colors []drawing.Color, i int) drawing.Color {
	if i < len(colors) {
		return colors[i]
	}
	return plotstyle.SeriesColor(i)
}

func legendLabel(legend []string, i int) string {
	if i < len(legend) {
		return legend[i]
	}
	return ""
}

// stepSeriesFilled is a step polyline with the area under it filled at low
// opacity.
func stepSeriesFilled(name string, edges, counts []float64, col drawing.Color) chart.Series {
	xs, ys := histogram.StepXY(edges, counts)
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 1.3,
			StrokeColor: col,
			FillColor:   col.WithAlpha(26),
		},
	}
}

// stepSeriesLine is a step polyline without fill.
func stepSeriesLine(name string, edges, counts []float64, col drawing.Color) chart.Series {
	xs, ys := histogram.StepXY(edges, counts)
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 1.3,
			StrokeColor: col,
		},
	}
}

// errorBarSeries builds a named dot-marker series at (xs, ys) plus one
// unnamed vertical segment per bin spanning +-errs. The marker series
// disables its stroke explicitly: a zero width counts as unset and would
// inherit the backend's default line between the points.
func errorBarSeries(name string, xs, ys, errs []float64, col drawing.Color) []chart.Series {
	out := make([]chart.Series, 0, len(xs)+1)
	for i := range xs {
		if errs[i] <= 0 {
			continue
		}
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{xs[i], xs[i]},
			YValues: []float64{ys[i] - errs[i], ys[i] + errs[i]},
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: col,
			},
		})
	}
	out = append(out, chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			StrokeColor: col,
			DotWidth:    3,
			DotColor:    col,
		},
	})
	return out
}
