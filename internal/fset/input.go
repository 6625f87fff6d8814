package fset

// Reserved input lines.
const (
	inputClose   = "q"
	inputRefresh = "$"
)

// Input handles a line typed in the pane. In order of priority:
// "q" closes the pane, "$" reloads the store and redraws, an action shortcut
// runs "/fset <action>", anything else becomes the store filter.
func (c *Controller) Input(p Pane, text string) {
	switch text {
	case inputClose:
		p.Close()
		return
	case inputRefresh:
		if err := c.store.Reload(); err != nil {
			c.logger.Debug().Err(err).Msg("reload failed")
		}
		c.Refresh(true)
		return
	}

	if action, ok := actionForInput(text); ok {
		if err := c.host.Command(p, "/"+CommandName+" "+action.String()); err != nil {
			c.logger.Debug().Err(err).Str("action", action.String()).Msg("action failed")
		}
		return
	}

	c.logger.Debug().Str("filter", text).Msg("filter input")
	c.store.Filter(text)
}
