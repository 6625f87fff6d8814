package fset

import (
	"github.com/rshade/fastset/internal/option"
)

// Record is one option row, read through named fields.
type Record = option.Record

// Store is the option source browsed by the pane.
type Store interface {
	// Reload fetches the record set again.
	Reload() error
	// Filter replaces the filter expression. The store notifies its owner,
	// which refreshes the pane.
	Filter(text string)
	// Clear empties the record set.
	Clear()
	Len() int
	// At returns the record at index i, or nil when out of range.
	At(i int) Record
	// MaxLength returns the widest value of field, if known.
	MaxLength(field string) (int, bool)
	// Apply runs action against the record at index i.
	Apply(action option.Action, i int) error
}

// Evaluator expands a display template against pointer and string bindings.
// ok is false when nothing should be displayed.
type Evaluator interface {
	Eval(tmpl string, pointers map[string]any, vars map[string]string) (line string, ok bool)
}

// Colorizer resolves a color name to a terminal escape sequence.
type Colorizer interface {
	Color(name string) string
}

// InputFunc receives a line typed in a pane.
type InputFunc func(p Pane, text string)

// CloseFunc is called after a pane has been closed, by any means.
type CloseFunc func(p Pane)

// Pane is a host-owned region of rows.
type Pane interface {
	Name() string
	// Set changes a pane property ("title", "type", "input",
	// "key_bind_<key>", "key_unbind_<key>", "localvar_set_<name>").
	Set(property, value string)
	// SetCallbacks replaces the input and close callbacks.
	SetCallbacks(input InputFunc, closed CloseFunc)
	// WriteRow replaces the row at absolute index y.
	WriteRow(y int, text string)
	Clear()
	// Close destroys the pane; the close callback runs before Close returns.
	Close()
}

// Window is a host window displaying a pane.
type Window interface {
	Number() int
	Pane() Pane
}

// Viewport is a snapshot of the rows visible in a window.
type Viewport struct {
	// Start is the first visible row, 0 when the window has never scrolled.
	Start int
	// Height is the number of visible rows.
	Height int
}

// Host owns panes and windows.
type Host interface {
	NewPane(plugin, name string, input InputFunc, closed CloseFunc) (Pane, error)
	// SearchPane returns the pane created by plugin with the given name, or nil.
	SearchPane(plugin, name string) Pane
	// SearchWindow returns the window displaying p, or nil.
	SearchWindow(p Pane) Window
	WindowInfo(w Window) Viewport
	// Command runs a command line such as "/window scroll -window 1 +3".
	Command(p Pane, command string) error
}
