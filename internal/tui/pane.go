package tui

import (
	"strings"

	"github.com/rshade/fastset/internal/fset"
)

// Pane property prefixes understood by Set.
const (
	propKeyBind     = "key_bind_"
	propKeyUnbind   = "key_unbind_"
	propLocalVarSet = "localvar_set_"
)

// keyNames maps host key names to bubbletea key strings.
//
//nolint:gochecknoglobals // Static translation table.
var keyNames = map[string]string{
	"meta2-A":  "up",
	"meta2-B":  "down",
	"meta2-C":  "right",
	"meta2-D":  "left",
	"meta2-5~": "pgup",
	"meta2-6~": "pgdown",
}

// translateKey converts a host key name ("meta-t", "ctrl-x", "meta2-A") to
// the string bubbletea reports for the key.
func translateKey(key string) string {
	if k, ok := keyNames[key]; ok {
		return k
	}
	if rest, ok := strings.CutPrefix(key, "meta-"); ok {
		return "alt+" + rest
	}
	if rest, ok := strings.CutPrefix(key, "ctrl-"); ok {
		return "ctrl+" + strings.ToLower(rest)
	}
	return key
}

// Pane is a named region of rows owned by a Host.
type Pane struct {
	host   *Host
	plugin string
	name   string

	title     string
	kind      string
	prefill   string
	hasInput  bool
	localVars map[string]string
	keys      map[string]string
	rows      []string

	input  fset.InputFunc
	closed fset.CloseFunc
	done   bool
}

func newPane(h *Host, plugin, name string, input fset.InputFunc, closed fset.CloseFunc) *Pane {
	return &Pane{
		host:      h,
		plugin:    plugin,
		name:      name,
		localVars: make(map[string]string),
		keys:      make(map[string]string),
		input:     input,
		closed:    closed,
	}
}

// Name returns the pane name.
func (p *Pane) Name() string {
	return p.name
}

// Plugin returns the name of the plugin that created the pane.
func (p *Pane) Plugin() string {
	return p.plugin
}

// Title returns the pane title.
func (p *Pane) Title() string {
	return p.title
}

// Type returns the pane type ("formatted" unless set).
func (p *Pane) Type() string {
	if p.kind == "" {
		return "formatted"
	}
	return p.kind
}

// LocalVar returns a local variable set with "localvar_set_<name>".
func (p *Pane) LocalVar(name string) string {
	return p.localVars[name]
}

// Binding returns the command bound to a bubbletea key string.
func (p *Pane) Binding(key string) (string, bool) {
	cmd, ok := p.keys[key]
	return cmd, ok
}

// Set changes a pane property.
func (p *Pane) Set(property, value string) {
	switch {
	case property == "title":
		p.title = value
	case property == "type":
		p.kind = value
	case property == "input":
		p.prefill = value
		p.hasInput = true
	case strings.HasPrefix(property, propKeyBind):
		p.keys[translateKey(strings.TrimPrefix(property, propKeyBind))] = value
	case strings.HasPrefix(property, propKeyUnbind):
		delete(p.keys, translateKey(strings.TrimPrefix(property, propKeyUnbind)))
	case strings.HasPrefix(property, propLocalVarSet):
		p.localVars[strings.TrimPrefix(property, propLocalVarSet)] = value
	default:
		p.host.logger.Debug().Str("pane", p.name).Str("property", property).Msg("unknown pane property")
	}
}

// SetCallbacks replaces the input and close callbacks.
func (p *Pane) SetCallbacks(input fset.InputFunc, closed fset.CloseFunc) {
	p.input = input
	p.closed = closed
}

// WriteRow replaces row y, growing the pane with empty rows as needed.
func (p *Pane) WriteRow(y int, text string) {
	if y < 0 {
		return
	}
	if y >= len(p.rows) {
		p.rows = append(p.rows, make([]string, y+1-len(p.rows))...)
	}
	p.rows[y] = text
	p.host.rowsChanged(p)
}

// Clear removes every row.
func (p *Pane) Clear() {
	p.rows = nil
	p.host.rowsChanged(p)
}

// Rows returns the pane rows.
func (p *Pane) Rows() []string {
	return p.rows
}

// Close destroys the pane. The close callback runs before Close returns;
// closing twice is a no-op.
func (p *Pane) Close() {
	if p.done {
		return
	}
	p.done = true
	p.host.remove(p)
	if p.closed != nil {
		p.closed(p)
	}
}

// takeInput returns and forgets the input line requested with the "input"
// property.
func (p *Pane) takeInput() (string, bool) {
	if !p.hasInput {
		return "", false
	}
	text := p.prefill
	p.prefill = ""
	p.hasInput = false
	return text, true
}
