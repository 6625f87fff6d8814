// Package listview provides the scroll model of a window over a pane's rows.
//
// A Window tracks how many rows the pane holds, the first visible row and the
// number of visible rows. Rendering is O(height): only the visible rows are
// produced, however many rows the pane holds.
//
// The window never moves on its own when the pane changes; it only clamps so
// that it does not scroll past the last row. Callers scroll it explicitly.
package listview
