// Package display arranges distribution panels into multidimensional
// grids: for an N-dimensional sample set, one row of 1D data-vs-model
// comparisons plus a 2D density map per variable pair. The incremental
// Display variant keeps its panel grid fixed and redraws contents in
// place as model weights change, which is what makes per-iteration
// refreshes cheap.
package display

import (
	"github.com/hepview/hepplot/src/histogram"
	"github.com/hepview/hepplot/src/plotlog"
	"github.com/hepview/hepplot/src/render"
)

// Samples is a column-major N-dimensional sample set: one []float64 per
// variable, all of equal length.
type Samples struct {
	cols [][]float64
}

// NewSamples wraps per-variable columns. Columns are referenced, not
// copied, and must not be mutated afterwards.
func NewSamples(cols [][]float64) Samples { return Samples{cols: cols} }

// Dim returns the number of variables.
func (s Samples) Dim() int { return len(s.cols) }

// Len returns the number of samples.
func (s Samples) Len() int {
	if len(s.cols) == 0 {
		return 0
	}
	return len(s.cols[0])
}

// Column returns the i-th variable's sample array.
func (s Samples) Column(i int) []float64 { return s.cols[i] }

// Options configures a display or comparison grid.
type Options struct {
	Units    []string
	Colormap string // density-map colormap name, default "jet"
}

func (o Options) unit(i int) string {
	if i < len(o.Units) {
		return o.Units[i]
	}
	return ""
}

func (o Options) colormap() render.Colormap {
	name := o.Colormap
	if name == "" {
		name = "jet"
	}
	return render.ColormapByName(name)
}

// NewPanelGrid allocates a rows x cols grid of empty surfaces of the
// given pixel size.
func NewPanelGrid(rows, cols, w, h int) [][]*render.Surface {
	grid := make([][]*render.Surface, rows)
	for r := range grid {
		grid[r] = make([]*render.Surface, cols)
		for c := range grid[r] {
			grid[r][c] = render.NewSurface(w, h)
		}
	}
	return grid
}

// Display is the incremental multidimensional view: data and
// normalization sample sets over a fixed panel grid. Construction draws
// the data density maps once; Draw redraws the comparisons and the
// normalization maps for a new weight vector. Panel positions never
// change after construction.
type Display struct {
	dim  int
	size int

	data, norm Samples
	bins       []int
	ranges     []histogram.Range
	labels     []string
	opts       Options

	panels   [][]*render.Surface
	overlays []*render.Overlay
	first    bool
}

// New builds a display over a pre-allocated panel grid (at least
// GridShape(data.Dim()) in size) and draws the data density map for every
// variable pair.
func New(data, norm Samples, bins []int, ranges []histogram.Range, labels []string, panels [][]*render.Surface, opts Options) *Display {
	d := &Display{
		dim:    data.Dim(),
		size:   data.Len(),
		data:   data,
		norm:   norm,
		bins:   bins,
		ranges: ranges,
		labels: labels,
		opts:   opts,
		panels: panels,
		first:  true,
	}
	cmap := opts.colormap()
	n := 0
	for i := 0; i < d.dim; i++ {
		for j := 0; j < i; j++ {
			r, c := DataPanel(d.dim, n)
			render.PlotDistr2D(panels[r][c],
				data.Column(i), data.Column(j),
				[2]int{bins[i], bins[j]},
				[2]histogram.Range{ranges[i], ranges[j]},
				[2]string{labels[i], labels[j]},
				render.Options2D{
					Colormap: cmap,
					Colorbar: true,
					Units:    [2]string{opts.unit(i), opts.unit(j)},
				})
			n++
		}
	}
	plotlog.Debugf("display: %d dims, %d samples, %d pair panels", d.dim, d.size, n)
	return d
}

// Draw redraws every mutable panel for a new model weight vector. Weights
// are rescaled so their sum equals the data sample count, overlays from
// the previous cycle are removed before their panels are cleared, and the
// normalization maps get a colorbar only on the first call ever.
func (d *Display) Draw(weights []float64) {
	scaled := histogram.NormalizeWeights(weights, d.size)

	for _, ov := range d.overlays {
		ov.Remove()
	}
	d.overlays = nil

	for i := 0; i < d.dim; i++ {
		p := d.panels[0][i]
		p.Clear()
		ovs := render.PlotComparison(p,
			d.data.Column(i), d.norm.Column(i),
			d.bins[i], d.ranges[i], d.labels[i],
			render.ComparisonOptions{
				Units:     d.opts.unit(i),
				Weights:   scaled,
				Pull:      true,
				DataAlpha: 0.3,
			})
		d.overlays = append(d.overlays, ovs...)
	}

	cmap := d.opts.colormap()
	n := 0
	for i := 0; i < d.dim; i++ {
		for j := 0; j < i; j++ {
			r, c := NormPanel(d.dim, n)
			p := d.panels[r][c]
			p.Clear()
			render.PlotDistr2D(p,
				d.norm.Column(i), d.norm.Column(j),
				[2]int{d.bins[i], d.bins[j]},
				[2]histogram.Range{d.ranges[i], d.ranges[j]},
				[2]string{d.labels[i], d.labels[j]},
				render.Options2D{
					Colormap: cmap,
					Weights:  scaled,
					Colorbar: d.first,
					Units:    [2]string{d.opts.unit(i), d.opts.unit(j)},
				})
			n++
		}
	}
	d.first = false
}

// Panels returns the underlying panel grid.
func (d *Display) Panels() [][]*render.Surface { return d.panels }

// OverlayCount returns the number of live pull overlays from the last
// Draw, zero before the first.
func (d *Display) OverlayCount() int { return len(d.overlays) }

// RenderComparisonGrid is the one-shot, non-incremental variant: row 0
// compares each variable of a against b with pulls, and every variable
// pair gets the two samples' density maps in adjacent panels. The created
// pull overlays are returned for the caller to dispose.
func RenderComparisonGrid(a, b Samples, bins []int, ranges []histogram.Range, labels []string, panels [][]*render.Surface, opts Options) []*render.Overlay {
	dim := a.Dim()
	var overlays []*render.Overlay
	for i := 0; i < dim; i++ {
		ovs := render.PlotComparison(panels[0][i],
			a.Column(i), b.Column(i),
			bins[i], ranges[i], labels[i],
			render.ComparisonOptions{
				Units: opts.unit(i),
				Pull:  true,
			})
		overlays = append(overlays, ovs...)
	}

	cmap := opts.colormap()
	n := 0
	for i := 0; i < dim; i++ {
		for j := 0; j < i; j++ {
			r1, c1, r2, c2 := ComparisonPanels(dim, n)
			for _, pp := range []struct {
				s    Samples
				r, c int
			}{{a, r1, c1}, {b, r2, c2}} {
				render.PlotDistr2D(panels[pp.r][pp.c],
					pp.s.Column(i), pp.s.Column(j),
					[2]int{bins[i], bins[j]},
					[2]histogram.Range{ranges[i], ranges[j]},
					[2]string{labels[i], labels[j]},
					render.Options2D{
						Colormap: cmap,
						Colorbar: true,
						Units:    [2]string{opts.unit(i), opts.unit(j)},
					})
			}
			n++
		}
	}
	return overlays
}
