package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/fastset/internal/fset"
	listview "github.com/rshade/fastset/internal/tui/list"
)

// Host errors.
var (
	ErrPaneExists     = errors.New("pane already exists")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoWindow       = errors.New("no such window")
	ErrInvalidCommand = errors.New("invalid command arguments")
)

// Default window dimensions, used until the terminal reports its size.
const (
	defaultWidth  = 80
	defaultHeight = 20
)

// CommandFunc handles a command; args are the space-separated words after
// the command name.
type CommandFunc func(args []string) error

// ScrolledFunc is called after a window has been scrolled.
type ScrolledFunc func(w fset.Window)

// Window displays one pane through a scrollable view.
type Window struct {
	number int
	pane   *Pane
	view   *listview.Window
}

// Number returns the window number.
func (w *Window) Number() int {
	return w.number
}

// Pane returns the displayed pane, or nil.
func (w *Window) Pane() fset.Pane {
	if w.pane == nil {
		return nil
	}
	return w.pane
}

// View returns the scroll model of the window.
func (w *Window) View() *listview.Window {
	return w.view
}

// Host owns the panes and the single window of the terminal UI, and routes
// commands typed or bound to keys. It is not safe for concurrent use; every
// call must come from the UI goroutine.
type Host struct {
	logger   zerolog.Logger
	panes    []*Pane
	window   *Window
	commands map[string]CommandFunc
	scrolled []ScrolledFunc
	status   string
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger used for command routing.
func WithHostLogger(logger zerolog.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// NewHost creates a host with an empty window numbered 1.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		logger:   zerolog.Nop(),
		window:   &Window{number: 1, view: listview.NewWindow(defaultHeight, defaultWidth)},
		commands: make(map[string]CommandFunc),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewPane creates a pane and displays it in the window.
func (h *Host) NewPane(plugin, name string, input fset.InputFunc, closed fset.CloseFunc) (fset.Pane, error) {
	if h.find(plugin, name) != nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrPaneExists, plugin, name)
	}
	p := newPane(h, plugin, name, input, closed)
	h.panes = append(h.panes, p)
	h.show(p)
	h.logger.Debug().Str("plugin", plugin).Str("pane", name).Msg("pane created")
	return p, nil
}

// SearchPane returns the pane created by plugin with the given name, or nil.
func (h *Host) SearchPane(plugin, name string) fset.Pane {
	if p := h.find(plugin, name); p != nil {
		return p
	}
	return nil
}

func (h *Host) find(plugin, name string) *Pane {
	for _, p := range h.panes {
		if p.plugin == plugin && p.name == name {
			return p
		}
	}
	return nil
}

// SearchWindow returns the window displaying p, or nil.
func (h *Host) SearchWindow(p fset.Pane) fset.Window {
	if h.window.pane == nil || fset.Pane(h.window.pane) != p {
		return nil
	}
	return h.window
}

// WindowInfo returns the visible rows of w. Start is 0 until the window has
// been scrolled.
func (h *Host) WindowInfo(w fset.Window) fset.Viewport {
	win, ok := w.(*Window)
	if !ok || win == nil {
		return fset.Viewport{}
	}
	vp := fset.Viewport{Height: win.view.Height()}
	if win.view.Scrolled() {
		vp.Start = win.view.Start()
	}
	return vp
}

// Window returns the host window.
func (h *Host) Window() *Window {
	return h.window
}

// Current returns the pane displayed in the window, or nil.
func (h *Host) Current() *Pane {
	return h.window.pane
}

// Panes returns the open panes in creation order.
func (h *Host) Panes() []*Pane {
	return h.panes
}

// RegisterCommand makes "/<name>" run fn.
func (h *Host) RegisterCommand(name string, fn CommandFunc) {
	h.commands[name] = fn
}

// HookWindowScrolled registers fn to run after every window scroll.
func (h *Host) HookWindowScrolled(fn ScrolledFunc) {
	h.scrolled = append(h.scrolled, fn)
}

// Command runs a command line such as "/window scroll -window 1 +3".
func (h *Host) Command(_ fset.Pane, command string) error {
	line, ok := strings.CutPrefix(strings.TrimSpace(command), "/")
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	h.logger.Debug().Str("command", command).Msg("running command")

	name, args := words[0], words[1:]
	if name == "window" {
		return h.windowCommand(args)
	}
	fn, ok := h.commands[name]
	if !ok {
		return fmt.Errorf("%w: /%s", ErrUnknownCommand, name)
	}
	return fn(args)
}

// windowCommand handles "/window scroll -window <n> <±lines>".
func (h *Host) windowCommand(args []string) error {
	if len(args) != 4 || args[0] != "scroll" || args[1] != "-window" {
		return fmt.Errorf("%w: /window %s", ErrInvalidCommand, strings.Join(args, " "))
	}
	number, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: window %q", ErrInvalidCommand, args[2])
	}
	if number != h.window.number {
		return fmt.Errorf("%w: %d", ErrNoWindow, number)
	}
	lines, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("%w: scroll %q", ErrInvalidCommand, args[3])
	}
	h.scroll(lines)
	return nil
}

// ScrollPage scrolls the window by pages, keeping one row of overlap.
func (h *Host) ScrollPage(pages int) {
	h.scroll(pages * max(h.window.view.Height()-1, 1))
}

func (h *Host) scroll(lines int) {
	h.window.view.ScrollBy(lines)
	if h.window.pane == nil {
		return
	}
	for _, fn := range h.scrolled {
		fn(h.window)
	}
}

// Resize sets the number of rows and columns available to the window.
func (h *Host) Resize(width, height int) {
	h.window.view.Resize(width, height)
}

// Submit handles a line entered in the input bar: lines starting with "/"
// are commands, anything else goes to the displayed pane.
func (h *Host) Submit(text string) {
	h.status = ""
	if strings.HasPrefix(text, "/") {
		h.run(text)
		return
	}
	p := h.window.pane
	if p == nil || p.input == nil || text == "" {
		return
	}
	p.input(p, text)
}

// PressKey runs the command bound to key in the displayed pane. It reports
// whether a binding existed.
func (h *Host) PressKey(key string) bool {
	p := h.window.pane
	if p == nil {
		return false
	}
	cmd, ok := p.Binding(key)
	if !ok {
		return false
	}
	h.status = ""
	h.run(cmd)
	return true
}

func (h *Host) run(command string) {
	if err := h.Command(h.window.Pane(), command); err != nil {
		h.logger.Debug().Err(err).Str("command", command).Msg("command failed")
		h.status = err.Error()
	}
}

// TakeInput returns the input line requested by the displayed pane, if any.
func (h *Host) TakeInput() (string, bool) {
	if h.window.pane == nil {
		return "", false
	}
	return h.window.pane.takeInput()
}

// Status returns the message of the last failed command.
func (h *Host) Status() string {
	return h.status
}

// SetStatus replaces the status message.
func (h *Host) SetStatus(msg string) {
	h.status = msg
}

// CloseAll closes every pane, most recent first.
func (h *Host) CloseAll() {
	for len(h.panes) > 0 {
		h.panes[len(h.panes)-1].Close()
	}
}

// Done reports whether the window has no pane left to display.
func (h *Host) Done() bool {
	return h.window.pane == nil
}

func (h *Host) show(p *Pane) {
	h.window.pane = p
	h.window.view.Reset()
	rows := 0
	if p != nil {
		rows = len(p.rows)
	}
	h.window.view.SetRows(rows)
}

func (h *Host) rowsChanged(p *Pane) {
	if h.window.pane == p {
		h.window.view.SetRows(len(p.rows))
	}
}

func (h *Host) remove(p *Pane) {
	h.panes = slices.DeleteFunc(h.panes, func(q *Pane) bool { return q == p })
	if h.window.pane != p {
		return
	}
	var next *Pane
	if len(h.panes) > 0 {
		next = h.panes[len(h.panes)-1]
	}
	h.show(next)
}
