// Package fset implements the fast set pane: a templated, selectable list of
// options rendered into a host pane.
//
// The Controller coordinates three independently changing pieces of state:
//   - the option list, owned by a Store and replaced at any time
//   - the viewport, owned by the host window showing the pane
//   - the selected row, owned by the Controller
//
// Selection changes redraw exactly the old and new rows; record set changes
// redraw every row. After a selection move the controller asks the host to
// scroll so the selected row stays visible, and a host scroll moves the
// selection onto the visible page.
//
// All methods must be called from the host's UI goroutine.
package fset
