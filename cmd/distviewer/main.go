// Command distviewer shows a multidimensional distribution display for a
// JSON sample file: one row of data-vs-model comparisons with pulls plus
// a density map per variable pair, redrawn in place when the weights
// change or the file is reloaded.
package main

import (
	"flag"
	"image"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/hepview/hepplot/cmd/distviewer/uihelpers"
	"github.com/hepview/hepplot/src/display"
	"github.com/hepview/hepplot/src/plotlog"
	"github.com/hepview/hepplot/src/plotstyle"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string
	colormap string

	file *sampleFile
	disp *display.Display

	// persistent canvases, one per grid cell, mutated in place per redraw
	panelImgs [][]*canvas.Image
	grid      *fyne.Container
	fileLabel *widget.Label
}

func main() {
	var fileFlag, screenshotsDir, logLevel string
	flag.StringVar(&fileFlag, "file", "", "Path to JSON sample file")
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render all panels as PNGs into this directory and exit (headless)")
	flag.StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	plotlog.SetLevel(logLevel)
	plotstyle.Apply(plotstyle.DefaultConfig())

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(fileFlag, screenshotsDir, "jet"); err != nil {
			plotlog.Errorf("screenshots: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("org.hepview.distviewer")
	w := a.NewWindow("Distribution Viewer")
	w.Resize(fyne.NewSize(1100, 800))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		colormap: a.Preferences().StringWithFallback("colormap", "jet"),
	}
	if state.filePath == "" {
		state.filePath = a.Preferences().StringWithFallback("lastFile", "")
	}

	state.fileLabel = widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))
	openBtn := widget.NewButton("Open...", func() {
		dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			path := r.URI().Path()
			_ = r.Close()
			state.filePath = path
			state.reload()
		}, w)
	})
	redrawBtn := widget.NewButton("Redraw", func() {
		if state.disp == nil || state.file == nil {
			return
		}
		state.disp.Draw(state.file.weights())
		state.refreshPanels()
	})
	cmapSelect := widget.NewSelect([]string{"jet", "YlOrBr"}, nil)
	cmapSelect.Selected = state.colormap
	cmapSelect.OnChanged = func(name string) {
		state.colormap = name
		state.app.Preferences().SetString("colormap", name)
		state.reload()
	}

	state.grid = container.NewVBox()
	top := container.NewHBox(openBtn, redrawBtn, widget.NewLabel("Colormap:"), cmapSelect, state.fileLabel)
	w.SetContent(container.NewBorder(top, nil, nil, nil, container.NewScroll(state.grid)))

	if state.filePath != "" {
		state.reload()
	}
	w.ShowAndRun()
}

// reload reads the sample file and rebuilds the panel grid and display
// from scratch. The grid shape depends on the file's dimension count, so
// a reload replaces the canvases rather than mutating them.
func (s *uiState) reload() {
	f, err := loadSampleFile(s.filePath)
	if err != nil {
		plotlog.Errorf("load: %v", err)
		dialog.ShowError(err, s.window)
		return
	}
	s.file = f
	s.app.Preferences().SetString("lastFile", s.filePath)
	s.fileLabel.SetText(uihelpers.TruncatePath(s.filePath, 60))

	rows, cols := display.GridShape(f.dim())
	pw, ph := uihelpers.ComputePanelSize(int(s.window.Canvas().Size().Width), cols)
	panels := display.NewPanelGrid(rows, cols, pw, ph)
	s.disp = display.New(
		display.NewSamples(f.Data), display.NewSamples(f.Norm),
		f.Bins, f.ranges(), f.Labels, panels,
		display.Options{Units: f.Units, Colormap: s.colormap},
	)
	s.disp.Draw(f.weights())

	s.panelImgs = make([][]*canvas.Image, rows)
	rowBoxes := make([]fyne.CanvasObject, rows)
	for r := 0; r < rows; r++ {
		s.panelImgs[r] = make([]*canvas.Image, cols)
		cells := make([]fyne.CanvasObject, cols)
		for c := 0; c < cols; c++ {
			ci := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, pw, ph)))
			ci.FillMode = canvas.ImageFillOriginal
			s.panelImgs[r][c] = ci
			cells[c] = ci
		}
		rowBoxes[r] = container.NewHBox(cells...)
	}
	s.grid.Objects = rowBoxes
	s.grid.Refresh()
	s.refreshPanels()
	plotlog.Infof("loaded %s: %d dims, %d data samples", s.filePath, f.dim(), len(f.Data[0]))
}

// refreshPanels re-renders every surface into its persistent canvas. A
// panel that fails to render keeps its previous image and logs the error
// instead of taking the viewer down.
func (s *uiState) refreshPanels() {
	for r, row := range s.disp.Panels() {
		for c, surf := range row {
			img, err := surf.Image()
			if err != nil {
				plotlog.Errorf("render panel %d,%d: %v", r, c, err)
				continue
			}
			s.panelImgs[r][c].Image = img
			s.panelImgs[r][c].Refresh()
		}
	}
}
