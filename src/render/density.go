package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hepview/hepplot/src/histogram"
	"github.com/hepview/hepplot/src/plotstyle"
)

// Options2D configures a density-map panel.
type Options2D struct {
	Weights  []float64
	Colormap Colormap // zero value falls back to YlOrBr
	Log      bool     // logarithmic color scale
	Title    string
	ZTitle   string // colorbar title, default "Entries"
	Units    [2]string
	Colorbar bool
}

// PlotDistr2D bins the two coordinate arrays with the fast 2D path and
// puts the resulting colored density mesh on the surface, replacing any
// previous contents of the panel's mesh layer. With Log set, the color
// normalization spans [vmin, vmax] where vmin is the minimum count floored
// to 1 when non-positive and vmax is the maximum count floored to vmin.
func PlotDistr2D(s *Surface, x, y []float64, bins [2]int, ranges [2]histogram.Range, labels [2]string, opts Options2D) {
	grid, xe, ye := histogram.Hist2D(x, y, bins[0], bins[1], ranges[0], ranges[1], opts.Weights)

	cmap := opts.Colormap
	if len(cmap.stops) == 0 {
		cmap = YlOrBr
	}
	var vmin, vmax float64
	if opts.Log {
		vmax = grid.Max()
		vmin = grid.Min()
		if vmin <= 0 {
			vmin = 1
		}
		if vmax <= vmin {
			vmax = vmin
		}
	} else {
		vmin, vmax = 0, grid.Max()
		if vmax <= 0 {
			vmax = 1
		}
	}
	zt := opts.ZTitle
	if zt == "" {
		zt = "Entries"
	}
	s.mesh = &meshLayer{
		grid:     grid,
		xedges:   xe,
		yedges:   ye,
		cmap:     cmap,
		log:      opts.Log,
		vmin:     vmin,
		vmax:     vmax,
		colorbar: opts.Colorbar,
		ztitle:   zt,
	}
	s.SetLabels(
		plotstyle.AxisTitle(labels[0], opts.Units[0]),
		plotstyle.AxisTitle(labels[1], opts.Units[1]),
	)
	if opts.Title != "" {
		s.SetTitle(opts.Title)
	}
}

// meshLayer is the rasterized density map of a panel. go-chart has no mesh
// primitive, so these panels are drawn directly: cell rectangles, an axis
// frame with ticks, and an optional colorbar.
type meshLayer struct {
	grid           histogram.Grid2D
	xedges, yedges []float64
	cmap           Colormap
	log            bool
	vmin, vmax     float64
	colorbar       bool
	ztitle         string
}

// norm maps a bin value to [0, 1] under the layer's color scale.
func (m *meshLayer) norm(v float64) float64 {
	var t float64
	if m.log {
		if v <= 0 {
			return 0
		}
		den := math.Log(m.vmax) - math.Log(m.vmin)
		if den <= 0 {
			if v >= m.vmax {
				return 1
			}
			return 0
		}
		t = (math.Log(v) - math.Log(m.vmin)) / den
	} else {
		den := m.vmax - m.vmin
		if den <= 0 {
			if v >= m.vmax {
				return 1
			}
			return 0
		}
		t = (v - m.vmin) / den
	}
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (m *meshLayer) render(s *Surface) image.Image {
	cfg := plotstyle.Current()
	W, H := s.Width, s.Height
	img := image.NewRGBA(image.Rect(0, 0, W, H))
	fillRect(img, img.Bounds(), color.White)

	top := 16
	if s.title != "" {
		top = 30
	}
	left, bottom, right := 56, 40, 14
	if m.colorbar {
		right = 78
	}
	plot := image.Rect(left, top, W-right, H-bottom)

	nx, ny := m.grid.BinsX, m.grid.BinsY
	x0, x1 := m.xedges[0], m.xedges[nx]
	y0, y1 := m.yedges[0], m.yedges[ny]
	px := func(v float64) int {
		return plot.Min.X + int((v-x0)/(x1-x0)*float64(plot.Dx())+0.5)
	}
	py := func(v float64) int {
		return plot.Max.Y - int((v-y0)/(y1-y0)*float64(plot.Dy())+0.5)
	}
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			c := m.cmap.At(m.norm(m.grid.At(ix, iy)))
			cell := image.Rect(px(m.xedges[ix]), py(m.yedges[iy+1]), px(m.xedges[ix+1]), py(m.yedges[iy]))
			fillRect(img, cell, rgba(c))
		}
	}

	axisCol := color.Black
	strokeRect(img, plot, axisCol)
	tick := int(cfg.TickMajor)
	for _, tk := range niceTicks(x0, x1, 5) {
		if tk.Value < x0 || tk.Value > x1 {
			continue
		}
		x := px(tk.Value)
		if cfg.TicksIn {
			fillRect(img, image.Rect(x, plot.Max.Y-tick, x+1, plot.Max.Y), axisCol)
		} else {
			fillRect(img, image.Rect(x, plot.Max.Y, x+1, plot.Max.Y+tick), axisCol)
		}
		drawText(img, x-textWidth(tk.Label)/2, plot.Max.Y+16, tk.Label, axisCol)
	}
	for _, tk := range niceTicks(y0, y1, 5) {
		if tk.Value < y0 || tk.Value > y1 {
			continue
		}
		yy := py(tk.Value)
		if cfg.TicksIn {
			fillRect(img, image.Rect(plot.Min.X, yy, plot.Min.X+tick, yy+1), axisCol)
		} else {
			fillRect(img, image.Rect(plot.Min.X-tick, yy, plot.Min.X, yy+1), axisCol)
		}
		drawText(img, plot.Min.X-6-textWidth(tk.Label), yy+4, tk.Label, axisCol)
	}

	// axis titles: x right-aligned under the frame, y above the top-left
	// corner (no vertical text in the embedded face)
	if s.xLabel != "" {
		drawText(img, plot.Max.X-textWidth(s.xLabel), H-6, s.xLabel, axisCol)
	}
	if s.yLabel != "" {
		drawText(img, 4, 12, s.yLabel, axisCol)
	}
	if s.title != "" {
		drawText(img, plot.Min.X+(plot.Dx()-textWidth(s.title))/2, 20, s.title, axisCol)
	}
	if m.colorbar {
		m.renderColorbar(img, plot)
	}
	return img
}

func (m *meshLayer) renderColorbar(img *image.RGBA, plot image.Rectangle) {
	bar := image.Rect(plot.Max.X+10, plot.Min.Y, plot.Max.X+24, plot.Max.Y)
	for yy := bar.Min.Y; yy < bar.Max.Y; yy++ {
		t := float64(bar.Max.Y-1-yy) / float64(bar.Dy()-1)
		fillRect(img, image.Rect(bar.Min.X, yy, bar.Max.X, yy+1), rgba(m.cmap.At(t)))
	}
	strokeRect(img, bar, color.Black)

	var vals []float64
	if m.log {
		vals = logTicks(m.vmin, m.vmax)
	} else {
		for _, tk := range niceTicks(m.vmin, m.vmax, 5) {
			if tk.Value >= m.vmin && tk.Value <= m.vmax {
				vals = append(vals, tk.Value)
			}
		}
	}
	for _, v := range vals {
		yy := bar.Max.Y - 1 - int(m.norm(v)*float64(bar.Dy()-1))
		fillRect(img, image.Rect(bar.Max.X, yy, bar.Max.X+3, yy+1), color.Black)
		drawText(img, bar.Max.X+5, yy+4, formatTick(v), color.Black)
	}
	drawText(img, bar.Min.X, bar.Min.Y-4, m.ztitle, color.Black)
}
