package fset

import (
	"github.com/mattn/go-runewidth"
)

// Render binding names.
const (
	pointerRecord = "record"
	colorPrefix   = "color_"
)

// Initial capacities of the render bindings.
const (
	pointersCapacity = 8
	varsCapacity     = 32
)

// renderLine draws rec at row y using the selected or normal template.
// Nothing is drawn when the template evaluates to nothing.
func (c *Controller) renderLine(y int, rec Record) {
	if c.pane == nil || rec == nil || c.vars == nil {
		return
	}
	selected := y == c.selected

	c.pointers[pointerRecord] = rec

	for _, col := range Columns {
		width := col.DefaultWidth
		if n, ok := c.store.MaxLength(col.Field); ok {
			width = n
		}
		c.vars[col.Field] = runewidth.FillRight(rec.Field(col.Field), width)
	}

	for _, col := range Columns {
		c.vars[colorPrefix+col.Field] = c.colors.Color(c.settings.color(col.Field, selected))
	}

	tmpl := c.settings.Format
	if selected {
		tmpl = c.settings.FormatCurrent
	}

	line, ok := c.eval.Eval(tmpl, c.pointers, c.vars)
	if !ok || line == "" {
		return
	}
	c.pane.WriteRow(y, line)
}
