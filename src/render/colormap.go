package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Colormap maps a normalized value in [0, 1] to a color by piecewise
// linear interpolation between fixed stops.
type Colormap struct {
	Name  string
	stops []drawing.Color
}

// At returns the color for t, clamped to [0, 1].
func (c Colormap) At(t float64) drawing.Color {
	n := len(c.stops)
	if n == 0 {
		return drawing.Color{A: 255}
	}
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[n-1]
	}
	f := t * float64(n-1)
	i := int(f)
	frac := f - float64(i)
	a, b := c.stops[i], c.stops[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + frac*(float64(y)-float64(x))) }
	return drawing.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// YlOrBr is the default sequential colormap for single density panels.
var YlOrBr = Colormap{Name: "YlOrBr", stops: []drawing.Color{
	{R: 255, G: 255, B: 229, A: 255},
	{R: 254, G: 227, B: 145, A: 255},
	{R: 254, G: 153, B: 41, A: 255},
	{R: 204, G: 76, B: 2, A: 255},
	{R: 102, G: 37, B: 6, A: 255},
}}

// Jet is the high-contrast map used for multi-panel projection grids.
var Jet = Colormap{Name: "jet", stops: []drawing.Color{
	{R: 0, G: 0, B: 143, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 128, G: 0, B: 0, A: 255},
}}

// ColormapByName resolves a colormap name, falling back to YlOrBr.
func ColormapByName(name string) Colormap {
	switch name {
	case "jet":
		return Jet
	default:
		return YlOrBr
	}
}
