// Package uihelpers holds pure sizing helpers for the viewer so they can
// be unit tested without a fyne driver.
package uihelpers

// ComputePanelSize derives the pixel size of one grid panel from the
// available window width and the number of grid columns. Width is clamped
// to keep axis text readable on narrow windows without letting single
// panels balloon on wide ones; height keeps a 4:3 aspect.
func ComputePanelSize(winW, cols int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	w := winW / cols
	if w < 240 {
		w = 240
	}
	if w > 520 {
		w = 520
	}
	return w, w * 3 / 4
}

// TruncatePath shortens a file path for display in the top bar, keeping
// the tail which carries the file name.
func TruncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	if max <= 3 {
		return p[len(p)-max:]
	}
	return "..." + p[len(p)-(max-3):]
}
