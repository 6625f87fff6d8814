// Package eval expands "${...}" references in display templates.
//
// A reference is resolved, in order, as:
//   - ${color:<spec>}   a terminal color sequence from the Colorizer
//   - ${<ptr>.<field>}  a field of a bound pointer implementing Field(string) string
//   - ${<var>}          a string variable
//
// Unknown references expand to the empty string.
package eval

import (
	"strings"
)

const (
	refOpen     = "${"
	refClose    = "}"
	colorPrefix = "color:"
)

// Colorizer turns a color specification into a terminal escape sequence.
type Colorizer interface {
	Color(spec string) string
}

// fielder is implemented by pointer bindings whose fields can be referenced.
type fielder interface {
	Field(name string) string
}

// Evaluator expands templates. The zero value expands colors to nothing.
type Evaluator struct {
	colors Colorizer
}

// New returns an Evaluator resolving ${color:...} with colors (nil disables colors).
func New(colors Colorizer) *Evaluator {
	return &Evaluator{colors: colors}
}

// Eval expands tmpl. ok is false when tmpl is empty or has an unterminated reference,
// in which case nothing should be displayed.
func (e *Evaluator) Eval(tmpl string, pointers map[string]any, vars map[string]string) (string, bool) {
	if tmpl == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(tmpl) * 2) //nolint:mnd // Colors and padding roughly double the template.
	rest := tmpl
	for {
		start := strings.Index(rest, refOpen)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		rest = rest[start+len(refOpen):]

		end := strings.Index(rest, refClose)
		if end < 0 {
			return "", false
		}
		b.WriteString(e.resolve(rest[:end], pointers, vars))
		rest = rest[end+len(refClose):]
	}
	return b.String(), true
}

func (e *Evaluator) resolve(ref string, pointers map[string]any, vars map[string]string) string {
	if spec, ok := strings.CutPrefix(ref, colorPrefix); ok {
		if e.colors == nil {
			return ""
		}
		return e.colors.Color(spec)
	}

	if name, field, ok := strings.Cut(ref, "."); ok {
		if f, isFielder := pointers[name].(fielder); isFielder {
			return f.Field(field)
		}
	}

	return vars[ref]
}
