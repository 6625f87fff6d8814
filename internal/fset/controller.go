package fset

import (
	"github.com/rs/zerolog"
)

// Names under which the pane and its command are registered with the host.
const (
	PluginName  = "fset"
	PaneName    = "fset"
	CommandName = "fset"
)

// Pane titles.
const (
	titleOpen    = "Options"
	titleRefresh = "Fast Set"
)

// Controller drives the fast set pane.
//
// It is created once by the owning process; at most one pane exists at a time.
type Controller struct {
	host     Host
	store    Store
	eval     Evaluator
	colors   Colorizer
	settings Settings
	logger   zerolog.Logger

	// pane is nil until Open and again after the host closes it
	pane Pane

	// selected is the selected row, -1 when the list is empty
	selected int

	// pointers and vars are the render bindings, allocated by Init and
	// overwritten on every rendered row
	pointers map[string]any
	vars     map[string]string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithSettings replaces the default settings.
func WithSettings(s Settings) ControllerOption {
	return func(c *Controller) {
		c.settings = s
	}
}

// NewController creates a controller. Init must be called before the pane is opened.
func NewController(host Host, store Store, eval Evaluator, colors Colorizer, opts ...ControllerOption) *Controller {
	c := &Controller{
		host:     host,
		store:    store,
		eval:     eval,
		colors:   colors,
		settings: DefaultSettings(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pane returns the open pane, or nil.
func (c *Controller) Pane() Pane {
	return c.pane
}

// Selected returns the selected row, -1 when the list is empty.
func (c *Controller) Selected() int {
	return c.selected
}

// Settings returns the current settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings replaces the settings, rebinds keys and redraws the pane.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
	if c.pane == nil {
		return
	}
	c.SetKeys()
	c.Refresh(false)
}

// Refresh redraws every row. With clear, the pane is emptied first and the
// selection moves back to the first row.
func (c *Controller) Refresh(clear bool) {
	if c.pane == nil {
		return
	}

	n := c.store.Len()
	switch {
	case clear:
		c.pane.Clear()
		c.selected = 0
	case c.selected >= n:
		c.selected = n - 1
	}
	if n == 0 {
		c.selected = -1
	} else if c.selected < 0 {
		c.selected = 0
	}

	c.pane.Set("title", titleRefresh)

	for i := 0; i < n; i++ {
		c.renderLine(i, c.store.At(i))
	}
	c.logger.Debug().Bool("clear", clear).Int("rows", n).Int("selected", c.selected).Msg("pane refreshed")
}

// SetCurrentLine selects line and redraws the previous and new selected rows.
// Out of range lines are ignored.
func (c *Controller) SetCurrentLine(line int) {
	if line < 0 || line >= c.store.Len() {
		return
	}

	old := c.selected
	c.selected = line

	c.renderLine(old, c.store.At(old))
	c.renderLine(c.selected, c.store.At(c.selected))
}
