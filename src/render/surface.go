// Package render turns binned sample arrays into styled distribution
// panels: step histograms, error-bar data points, data-vs-model
// comparisons with pull overlays, and 2D density maps. All drawing goes
// through the Surface type, a caller-owned mutable panel.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/hepview/hepplot/src/plotstyle"
)

// Default panel pixel size used when a Surface is created with
// non-positive dimensions.
const (
	DefaultPanelWidth  = 480
	DefaultPanelHeight = 360
)

// Surface is a mutable drawing target for one distribution panel. It
// accumulates series, labels and an optional density layer and renders
// them on demand. A Surface is single-owner and not safe for concurrent
// use.
type Surface struct {
	Width, Height int

	title          string
	xLabel, yLabel string
	series         []chart.Series
	xRange, yRange *chart.ContinuousRange
	showLegend     bool

	mesh   *meshLayer
	legend *legendLayer

	overlays []*Overlay
}

// NewSurface returns an empty panel of the given pixel size.
func NewSurface(w, h int) *Surface {
	if w <= 0 {
		w = DefaultPanelWidth
	}
	if h <= 0 {
		h = DefaultPanelHeight
	}
	return &Surface{Width: w, Height: h}
}

// Clear drops the panel contents but keeps the panel itself: its size and
// its place in any layout are preserved. Attached overlays are not removed;
// they belong to whoever created them.
func (s *Surface) Clear() {
	s.title, s.xLabel, s.yLabel = "", "", ""
	s.series = nil
	s.xRange, s.yRange = nil, nil
	s.showLegend = false
	s.mesh = nil
	s.legend = nil
}

// SetTitle sets the panel title.
func (s *Surface) SetTitle(t string) { s.title = t }

// SetLabels sets the x and y axis titles.
func (s *Surface) SetLabels(x, y string) { s.xLabel, s.yLabel = x, y }

// HasColorbar reports whether the panel carries a density layer with an
// attached colorbar.
func (s *Surface) HasColorbar() bool { return s.mesh != nil && s.mesh.colorbar }

// OverlayCount returns the number of secondary-scale overlays currently
// attached.
func (s *Surface) OverlayCount() int { return len(s.overlays) }

func (s *Surface) addSeries(ss ...chart.Series) { s.series = append(s.series, ss...) }

// Overlay is a transient secondary-y-scale surface attached to a parent
// panel, sharing its x axis; pull sub-panels are drawn through one. The
// creator must Remove it before the next redraw cycle or overlays
// accumulate without bound.
type Overlay struct {
	parent     *Surface
	yLabel     string
	yMin, yMax float64
	series     []chart.Series
	removed    bool
}

// newOverlay attaches a secondary-scale overlay with the given y range.
func (s *Surface) newOverlay(label string, yMin, yMax float64) *Overlay {
	o := &Overlay{parent: s, yLabel: label, yMin: yMin, yMax: yMax}
	s.overlays = append(s.overlays, o)
	return o
}

// Remove detaches the overlay from its parent panel. Removing twice is a
// no-op.
func (o *Overlay) Remove() {
	if o.removed {
		return
	}
	o.removed = true
	p := o.parent
	for i, ov := range p.overlays {
		if ov == o {
			p.overlays = append(p.overlays[:i], p.overlays[i+1:]...)
			break
		}
	}
}

// Image renders the panel. Density and legend-only panels take the raster
// path; everything else is rendered through the charting backend. An empty
// panel yields a blank image rather than an error.
func (s *Surface) Image() (image.Image, error) {
	if s.mesh != nil {
		return s.mesh.render(s), nil
	}
	if s.legend != nil {
		return s.legend.render(s), nil
	}
	if len(s.series) == 0 {
		return blank(s.Width, s.Height), nil
	}
	ch := s.chart()
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel: %w", err)
	}
	return img, nil
}

// Render writes the panel as PNG.
func (s *Surface) Render(w io.Writer) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (s *Surface) chart() chart.Chart {
	cfg := plotstyle.Current()
	xa := chart.XAxis{
		Name:      s.xLabel,
		Style:     chart.Style{FontSize: cfg.FontSize},
		NameStyle: chart.Style{FontSize: cfg.FontSize},
	}
	ya := chart.YAxis{
		Name:      s.yLabel,
		Style:     chart.Style{FontSize: cfg.FontSize},
		NameStyle: chart.Style{FontSize: cfg.FontSize},
	}
	if s.xRange != nil {
		xa.Range = s.xRange
	}
	if s.yRange != nil {
		ya.Range = s.yRange
	}
	if cfg.Grid {
		gs := chart.Style{
			StrokeWidth: 1,
			StrokeColor: chart.ColorAlternateGray.WithAlpha(uint8(cfg.GridAlpha * 255)),
		}
		xa.GridMajorStyle = gs
		ya.GridMajorStyle = gs
	}
	ch := chart.Chart{
		Title:      s.title,
		TitleStyle: chart.Style{FontSize: cfg.FontSize + 2},
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      xa,
		YAxis:      ya,
		Series:     append([]chart.Series{}, s.series...),
	}
	for _, ov := range s.overlays {
		ch.YAxisSecondary = chart.YAxis{
			Name:      ov.yLabel,
			Style:     chart.Style{FontSize: cfg.FontSize},
			NameStyle: chart.Style{FontSize: cfg.FontSize},
			Range:     &chart.ContinuousRange{Min: ov.yMin, Max: ov.yMax},
		}
		ch.Series = append(ch.Series, ov.series...)
	}
	if s.showLegend {
		// the stock legend lists every visible series, blank names
		// included, so feed it a filtered copy
		legendChart := ch
		legendChart.Series = legendSeries(ch.Series)
		ch.Elements = []chart.Renderable{chart.Legend(&legendChart)}
	}
	return ch
}

// legendSeries drops unnamed series: error-bar segments and pull overlays
// carry no name and must not produce blank legend entries.
func legendSeries(in []chart.Series) []chart.Series {
	out := make([]chart.Series, 0, len(in))
	for _, ss := range in {
		if ss.GetName() != "" {
			out = append(out, ss)
		}
	}
	return out
}
