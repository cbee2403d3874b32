package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hepview/hepplot/src/histogram"
	"github.com/hepview/hepplot/src/plotstyle"
)

// ComparisonOptions configures a data-vs-model comparison panel.
type ComparisonOptions struct {
	Units string
	// Weights applies per-sample weights when binning the model array.
	Weights []float64
	// Components holds additional weight arrays over the model sample;
	// each is drawn as a separate curve scaled by the same normalization
	// factor as the model. When Weights is also set, each component weight
	// is multiplied element-wise with it.
	Components      [][]float64
	Colors          []drawing.Color // component color overrides
	ComponentLegend []string        // component legend labels
	// NoLegend drops the legend entirely, including the Data/Fit entries.
	NoLegend bool
	// Pull adds a (data-model)/sqrt(data) sub-panel on a secondary y scale.
	Pull          bool
	Title         string
	SuppressTitle bool
	// DataAlpha dims the data markers; 0 means opaque.
	DataAlpha float64
	// LegendSurface, when set, receives the legend handles instead of the
	// comparison panel; its axes are hidden.
	LegendSurface *Surface
}

// PlotComparison bins the empirical and model arrays with identical
// binning, rescales the model so both histograms integrate to the same
// area, and draws the model as a step line with the data as error-bar
// markers on top. A zero-sum model yields a non-finite scale factor and a
// degenerate panel; guarding against that is the caller's job.
//
// The returned slice holds the secondary-scale overlays created by this
// call (one when Pull is set, none otherwise); the caller owns them and
// must Remove them before redrawing the panel.
func PlotComparison(s *Surface, data, model []float64, bins int, rng histogram.Range, label string, opts ComparisonOptions) []*Overlay {
	dataCounts, _ := histogram.Hist1D(data, bins, rng, nil)
	modelCounts, edges := histogram.Hist1D(model, bins, rng, opts.Weights)
	scale := histogram.ScaleToData(dataCounts, modelCounts)
	scaledModel := histogram.Scaled(modelCounts, scale)

	dataName, fitName := "Data", "Fit"
	if opts.NoLegend {
		dataName, fitName = "", ""
	}

	maxY := 0.0
	bump := func(vs []float64) {
		for _, v := range vs {
			if v > maxY {
				maxY = v
			}
		}
	}
	bump(scaledModel)

	s.addSeries(stepSeriesLine(fitName, edges, scaledModel, plotstyle.FitColor))

	centers := histogram.Centers(edges)
	var legendEntries []legendEntry
	for i, cw := range opts.Components {
		w2 := cw
		if opts.Weights != nil {
			w2 = histogram.Mul(cw, opts.Weights)
		}
		compCounts, _ := histogram.Hist1D(model, bins, rng, w2)
		compCounts = histogram.Scaled(compCounts, scale)
		bump(compCounts)
		col := opts.Colors
		var c drawing.Color
		if i < len(col) {
			c = col[i]
		} else {
			c = plotstyle.SeriesColor(i + 1)
		}
		name := legendLabel(opts.ComponentLegend, i)
		s.addSeries(chart.ContinuousSeries{
			Name:    name,
			XValues: centers,
			YValues: compCounts,
			Style: chart.Style{
				StrokeWidth: 1.3,
				StrokeColor: c,
				FillColor:   c.WithAlpha(26),
			},
		})
		if name != "" {
			legendEntries = append(legendEntries, legendEntry{label: name, color: c})
		}
	}

	dataCol := plotstyle.DataColor
	if opts.DataAlpha > 0 {
		dataCol = dataCol.WithAlpha(uint8(opts.DataAlpha*255 + 0.5))
	}
	errs := make([]float64, len(dataCounts))
	for i, v := range dataCounts {
		errs[i] = math.Sqrt(v)
		if v+errs[i] > maxY {
			maxY = v + errs[i]
		}
	}
	s.addSeries(errorBarSeries(dataName, centers, dataCounts, errs, dataCol)...)

	s.xRange = &chart.ContinuousRange{Min: rng.Lo, Max: rng.Hi}
	if maxY <= 0 || math.IsNaN(maxY) || math.IsInf(maxY, 0) {
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

	if !opts.NoLegend {
		if opts.LegendSurface != nil {
			entries := append([]legendEntry{
				{label: "Data", color: dataCol},
				{label: "Fit", color: plotstyle.FitColor},
			}, legendEntries...)
			opts.LegendSurface.legend = &legendLayer{entries: entries}
		} else {
			s.showLegend = true
		}
	}

	if !opts.Pull {
		return nil
	}
	pull := histogram.Pull(dataCounts, scaledModel)
	xs, ys := histogram.StepXY(edges, pull)
	ov := s.newOverlay("Pull", -10, 10)
	ov.series = []chart.Series{chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		YAxis:   chart.YAxisSecondary,
		Style: chart.Style{
			StrokeWidth: 1.3,
			StrokeColor: plotstyle.PullColor.WithAlpha(76),
		},
	}}
	return []*Overlay{ov}
}
