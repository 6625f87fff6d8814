package fset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/fastset/internal/option"
)

// Command runs the "/fset" command with the given arguments:
//
//	/fset                 open the pane with every option
//	/fset <filter>        open the pane with a filter
//	/fset -up | -down     move the selection by one row
//	/fset [-]<action>     run an action on the selected option
func (c *Controller) Command(args []string) error {
	if len(args) == 0 {
		if err := c.Open(); err != nil {
			return err
		}
		if err := c.store.Reload(); err != nil {
			c.logger.Debug().Err(err).Msg("reload failed")
		}
		c.Refresh(true)
		return nil
	}

	switch args[0] {
	case "-up":
		c.move(-1)
		return nil
	case "-down":
		c.move(1)
		return nil
	}

	if action, ok := option.ParseAction(strings.TrimPrefix(args[0], "-")); ok && len(args) == 1 {
		return c.runAction(action)
	}

	if err := c.Open(); err != nil {
		return err
	}
	c.store.Filter(strings.Join(args, " "))
	return nil
}

func (c *Controller) move(delta int) {
	if c.pane == nil {
		return
	}
	c.SetCurrentLine(c.selected + delta)
	c.CheckLineOutsideWindow()
}

// runAction applies action to the selected option. Set prefills the pane
// input with a /set command holding the current value; append prefills an
// empty /append command.
func (c *Controller) runAction(action option.Action) error {
	if c.pane == nil || c.selected < 0 {
		return nil
	}

	err := c.store.Apply(action, c.selected)
	if errors.Is(err, option.ErrNeedsValue) {
		rec := c.store.At(c.selected)
		if rec == nil {
			return nil
		}
		name := rec.Field(option.FieldName)
		if action == option.ActionAppend {
			c.pane.Set("input", fmt.Sprintf("/append %s ", name))
			return nil
		}
		value := rec.Field(option.FieldValue)
		if value == "null" {
			value = ""
		}
		c.pane.Set("input", fmt.Sprintf("/set %s %s", name, value))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}
