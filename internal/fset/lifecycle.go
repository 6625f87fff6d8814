package fset

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by Init when a collaborator is missing.
var ErrNotConfigured = errors.New("fset: controller not configured")

// Init allocates the render bindings and re-attaches the callbacks of a pane
// left open by a previous controller. On failure nothing stays allocated.
func (c *Controller) Init() error {
	if c.host == nil || c.store == nil || c.eval == nil || c.colors == nil {
		return ErrNotConfigured
	}

	c.pointers = make(map[string]any, pointersCapacity)
	c.vars = make(map[string]string, varsCapacity)

	c.restoreCallbacks()
	return nil
}

// End releases the render bindings.
func (c *Controller) End() {
	c.pointers = nil
	c.vars = nil
}

func (c *Controller) restoreCallbacks() {
	p := c.host.SearchPane(PluginName, PaneName)
	if p == nil {
		return
	}
	c.pane = p
	p.SetCallbacks(c.Input, c.onClose)
	c.logger.Debug().Str("pane", p.Name()).Msg("pane callbacks restored")
}

// Open creates the pane if it does not exist yet.
func (c *Controller) Open() error {
	if c.pane != nil {
		return nil
	}

	p, err := c.host.NewPane(PluginName, PaneName, c.Input, c.onClose)
	if err != nil {
		return fmt.Errorf("opening %s pane: %w", PaneName, err)
	}
	c.pane = p

	p.Set("type", "free")
	p.Set("title", titleOpen)
	c.SetKeys()
	p.Set("localvar_set_type", "option")

	c.selected = 0
	c.logger.Debug().Str("pane", p.Name()).Msg("pane opened")
	return nil
}

// SetKeys binds the navigation keys and, depending on Settings.UseKeys,
// binds or unbinds the action shortcuts.
func (c *Controller) SetKeys() {
	if c.pane == nil {
		return
	}

	c.pane.Set("key_bind_"+keyUp, "/"+CommandName+" -up")
	c.pane.Set("key_bind_"+keyDown, "/"+CommandName+" -down")
	for _, s := range shortcuts {
		if c.settings.UseKeys {
			c.pane.Set("key_bind_"+s.key, "/"+CommandName+" -"+s.action.String())
		} else {
			c.pane.Set("key_unbind_"+s.key, "")
		}
	}
}

// onClose forgets the pane after the host closed it. Repeated calls are harmless.
func (c *Controller) onClose(Pane) {
	if c.pane != nil {
		c.logger.Debug().Msg("pane closed")
	}
	c.pane = nil
	c.selected = 0
	c.store.Clear()
}
