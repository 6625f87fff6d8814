package fset

import (
	"fmt"
)

// CheckLineOutsideWindow scrolls the window showing the pane so that the
// selected row becomes its nearest visible boundary row. Nothing happens when
// the pane is not displayed or the row is already visible.
func (c *Controller) CheckLineOutsideWindow() {
	if c.pane == nil || c.selected < 0 {
		return
	}
	w := c.host.SearchWindow(c.pane)
	if w == nil {
		return
	}

	vp := c.host.WindowInfo(w)
	var cmd string
	switch {
	case vp.Start > c.selected:
		cmd = fmt.Sprintf("/window scroll -window %d -%d", w.Number(), vp.Start-c.selected)
	case vp.Start <= c.selected-vp.Height:
		cmd = fmt.Sprintf("/window scroll -window %d +%d", w.Number(), c.selected-vp.Start-vp.Height+1)
	default:
		return
	}
	c.command(cmd)
}

// OnWindowScrolled moves the selection onto the page now visible in w,
// keeping its offset within the page. Windows not showing the pane are ignored.
func (c *Controller) OnWindowScrolled(w Window) {
	if c.pane == nil || w == nil || w.Pane() != c.pane {
		return
	}

	vp := c.host.WindowInfo(w)
	if vp.Height <= 0 {
		return
	}

	line := c.selected
	for line < vp.Start {
		line += vp.Height
	}
	for line >= vp.Start+vp.Height {
		line -= vp.Height
	}
	if line < vp.Start {
		line = vp.Start
	}
	if n := c.store.Len(); line >= n {
		line = n - 1
	}
	c.SetCurrentLine(line)
}

// command runs cmd on the pane. Failures are logged only.
func (c *Controller) command(cmd string) {
	if err := c.host.Command(c.pane, cmd); err != nil {
		c.logger.Debug().Err(err).Str("command", cmd).Msg("host command failed")
		return
	}
	c.logger.Debug().Str("command", cmd).Msg("host command")
}
