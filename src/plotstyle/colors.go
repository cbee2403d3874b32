package plotstyle

import "github.com/wcharczuk/go-chart/v2/drawing"

// Fixed palette used across all distribution panels.
var (
	DataColor       = drawing.Color{R: 0, G: 0, B: 0, A: 255}       // black
	FitColor        = drawing.Color{R: 6, G: 154, B: 243, A: 255}   // azure
	SignalColor     = drawing.Color{R: 252, G: 90, B: 80, A: 255}   // coral
	BackgroundColor = drawing.Color{R: 2, G: 147, B: 134, A: 255}   // teal
	PullColor       = drawing.Color{R: 229, G: 0, B: 0, A: 255}     // red
)

// seriesWheel is the default color cycle for overlaid series (C0..C9).
var seriesWheel = []drawing.Color{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// SeriesColor returns the default color of the i-th overlaid series,
// cycling through a fixed ten-color wheel.
func SeriesColor(i int) drawing.Color {
	return seriesWheel[((i%len(seriesWheel))+len(seriesWheel))%len(seriesWheel)]
}
