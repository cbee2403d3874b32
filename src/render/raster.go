package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// blank returns a plain white panel image.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// drawText renders s with baseline at (x, y) using the embedded 7x13 face.
func drawText(dst *image.RGBA, x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// textWidth measures s in the embedded face.
func textWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

func rgba(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a 1px rectangle outline.
func strokeRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// legendLayer renders a legend-only panel: color swatches plus labels,
// no axes. Used when a comparison transfers its legend handles to a
// dedicated surface.
type legendLayer struct {
	entries []legendEntry
}

type legendEntry struct {
	label string
	color drawing.Color
}

func (l *legendLayer) render(s *Surface) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	fillRect(img, img.Bounds(), color.White)
	y := 22
	for _, e := range l.entries {
		fillRect(img, image.Rect(12, y-6, 34, y-3), rgba(e.color))
		drawText(img, 40, y, e.label, color.Black)
		y += 18
	}
	return img
}
