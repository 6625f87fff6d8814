package listview

import (
	"strings"
)

// RenderFunc renders the pane row at index row.
type RenderFunc func(row int) string

// Window is a scrollable view of height rows over a pane of rows rows.
type Window struct {
	// rows is the number of rows in the displayed pane
	rows int

	// start is the first visible row
	start int

	// height is the viewport height in rows
	height int

	// width is the viewport width in columns
	width int

	// scrolled is set once the window has been scrolled; an unscrolled window
	// reports its start as 0
	scrolled bool
}

// NewWindow creates a window of the given size over an empty pane.
func NewWindow(height, width int) *Window {
	return &Window{
		height: max(height, 0),
		width:  max(width, 0),
	}
}

// SetRows updates the number of rows in the pane, clamping the start row.
func (w *Window) SetRows(n int) {
	w.rows = max(n, 0)
	w.clamp()
}

// Resize changes the viewport size, clamping the start row.
func (w *Window) Resize(width, height int) {
	w.width = max(width, 0)
	w.height = max(height, 0)
	w.clamp()
}

// ScrollBy moves the start row by delta, within bounds. It reports whether
// the start row changed.
func (w *Window) ScrollBy(delta int) bool {
	return w.ScrollTo(w.start + delta)
}

// ScrollTo moves the start row to start, within bounds. It reports whether
// the start row changed.
func (w *Window) ScrollTo(start int) bool {
	old := w.start
	w.start = start
	w.clamp()
	w.scrolled = true
	return w.start != old
}

// Reset scrolls back to the top and forgets any scroll, as for a newly
// displayed pane.
func (w *Window) Reset() {
	w.start = 0
	w.scrolled = false
}

func (w *Window) clamp() {
	if w.start > w.MaxStart() {
		w.start = w.MaxStart()
	}
	if w.start < 0 {
		w.start = 0
	}
}

// MaxStart returns the last start row that still fills the viewport.
func (w *Window) MaxStart() int {
	return max(w.rows-w.height, 0)
}

// Start returns the first visible row.
func (w *Window) Start() int {
	return w.start
}

// Scrolled reports whether the window has been scrolled since the last Reset.
func (w *Window) Scrolled() bool {
	return w.scrolled
}

// Rows returns the number of rows in the pane.
func (w *Window) Rows() int {
	return w.rows
}

// Height returns the viewport height.
func (w *Window) Height() int {
	return w.height
}

// Width returns the viewport width.
func (w *Window) Width() int {
	return w.width
}

// Visible returns the visible row range [from, to).
func (w *Window) Visible() (int, int) {
	return w.start, min(w.start+w.height, w.rows)
}

// View renders the visible rows, padded with empty lines to the viewport height.
func (w *Window) View(render RenderFunc) string {
	if w.height == 0 {
		return ""
	}

	from, to := w.Visible()
	var sb strings.Builder
	for i := 0; i < w.height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if row := from + i; row < to {
			sb.WriteString(render(row))
		}
	}
	return sb.String()
}
