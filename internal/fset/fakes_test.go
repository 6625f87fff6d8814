package fset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/fastset/internal/eval"
	"github.com/rshade/fastset/internal/option"
)

// fakeRecord is a record backed by a field map.
type fakeRecord map[string]string

func (r fakeRecord) Field(name string) string { return r[name] }

func makeRecords(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = fakeRecord{
			option.FieldName:         fmt.Sprintf("opt.%03d", i),
			option.FieldType:         "integer",
			option.FieldDefaultValue: "0",
			option.FieldValue:        fmt.Sprint(i),
		}
	}
	return recs
}

type applyCall struct {
	action option.Action
	index  int
}

type fakeStore struct {
	records   []Record
	reloadSet []Record
	maxLength map[string]int
	filters   []string
	reloads   int
	clears    int
	applied   []applyCall
	applyErr  error
	reloadErr error
}

func newFakeStore(n int) *fakeStore {
	return &fakeStore{records: makeRecords(n), maxLength: map[string]int{}}
}

func (s *fakeStore) Reload() error {
	s.reloads++
	if s.reloadErr != nil {
		return s.reloadErr
	}
	if s.reloadSet != nil {
		s.records = s.reloadSet
	}
	return nil
}

func (s *fakeStore) Filter(text string) { s.filters = append(s.filters, text) }

func (s *fakeStore) Clear() {
	s.clears++
	s.records = nil
}

func (s *fakeStore) Len() int { return len(s.records) }

func (s *fakeStore) At(i int) Record {
	if i < 0 || i >= len(s.records) {
		return nil
	}
	return s.records[i]
}

func (s *fakeStore) MaxLength(field string) (int, bool) {
	n, ok := s.maxLength[field]
	return n, ok
}

func (s *fakeStore) Apply(action option.Action, i int) error {
	s.applied = append(s.applied, applyCall{action: action, index: i})
	return s.applyErr
}

type fakePane struct {
	host   *fakeHost
	name   string
	props  map[string]string
	rows   map[int]string
	writes []int
	clears int
	closed bool
	input  InputFunc
	onEnd  CloseFunc
}

func (p *fakePane) Name() string                { return p.name }
func (p *fakePane) Set(property, value string)  { p.props[property] = value }
func (p *fakePane) WriteRow(y int, text string) { p.rows[y] = text; p.writes = append(p.writes, y) }

func (p *fakePane) SetCallbacks(input InputFunc, closed CloseFunc) {
	p.input = input
	p.onEnd = closed
}

func (p *fakePane) Clear() {
	p.clears++
	p.rows = map[int]string{}
}

func (p *fakePane) Close() {
	p.closed = true
	if p.host.window != nil && p.host.window.pane == Pane(p) {
		p.host.window.pane = nil
	}
	if p.onEnd != nil {
		p.onEnd(p)
	}
}

// rowsSnapshot returns the rows as a slice of n entries.
func (p *fakePane) rowsSnapshot(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = p.rows[i]
	}
	return out
}

type fakeWindow struct {
	number int
	pane   Pane
	vp     Viewport
}

func (w *fakeWindow) Number() int { return w.number }
func (w *fakeWindow) Pane() Pane  { return w.pane }

type fakeHost struct {
	panes      []*fakePane
	window     *fakeWindow
	existing   *fakePane
	commands   []string
	commandErr error
	newPaneErr error
	// showPanes makes new panes visible in the window
	showPanes bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{window: &fakeWindow{number: 1, vp: Viewport{Height: 10}}, showPanes: true}
}

func (h *fakeHost) NewPane(_, name string, input InputFunc, closed CloseFunc) (Pane, error) {
	if h.newPaneErr != nil {
		return nil, h.newPaneErr
	}
	p := &fakePane{host: h, name: name, props: map[string]string{}, rows: map[int]string{}, input: input, onEnd: closed}
	h.panes = append(h.panes, p)
	if h.showPanes {
		h.window.pane = p
	}
	return p, nil
}

func (h *fakeHost) SearchPane(_, _ string) Pane {
	if h.existing == nil {
		return nil
	}
	return h.existing
}

func (h *fakeHost) SearchWindow(p Pane) Window {
	if h.window == nil || h.window.pane == nil || h.window.pane != p {
		return nil
	}
	return h.window
}

func (h *fakeHost) WindowInfo(w Window) Viewport {
	return w.(*fakeWindow).vp
}

func (h *fakeHost) Command(_ Pane, command string) error {
	h.commands = append(h.commands, command)
	return h.commandErr
}

// lastPane returns the most recently created pane.
func (h *fakeHost) lastPane() *fakePane {
	if len(h.panes) == 0 {
		return nil
	}
	return h.panes[len(h.panes)-1]
}

type bracketColors struct{}

func (bracketColors) Color(name string) string { return "<" + name + ">" }

// countingEvaluator wraps the real evaluator and records every call.
type countingEvaluator struct {
	inner     *eval.Evaluator
	templates []string
	records   []Record
	empty     bool
}

func newCountingEvaluator() *countingEvaluator {
	return &countingEvaluator{inner: eval.New(nil)}
}

func (e *countingEvaluator) Eval(tmpl string, pointers map[string]any, vars map[string]string) (string, bool) {
	e.templates = append(e.templates, tmpl)
	rec, _ := pointers[pointerRecord].(Record)
	e.records = append(e.records, rec)
	if e.empty {
		return "", false
	}
	return e.inner.Eval(tmpl, pointers, vars)
}

func (e *countingEvaluator) calls() int { return len(e.templates) }

func (e *countingEvaluator) reset() {
	e.templates = nil
	e.records = nil
}

// testSettings uses short templates so rows are easy to assert on.
func testSettings() Settings {
	s := DefaultSettings()
	s.Format = "${color_name}${name}|${value}"
	s.FormatCurrent = "*${color_name}${name}|${value}"
	return s
}

type fixture struct {
	host  *fakeHost
	store *fakeStore
	eval  *countingEvaluator
	ctrl  *Controller
}

func newFixture(records int) *fixture {
	f := &fixture{
		host:  newFakeHost(),
		store: newFakeStore(records),
		eval:  newCountingEvaluator(),
	}
	f.store.maxLength[option.FieldName] = len("opt.000")
	f.store.maxLength[option.FieldValue] = 2
	f.ctrl = NewController(f.host, f.store, f.eval, bracketColors{}, WithSettings(testSettings()))
	if err := f.ctrl.Init(); err != nil {
		panic(err)
	}
	return f
}

// open opens the pane and draws it, then forgets the draw calls.
func (f *fixture) open() *fakePane {
	if err := f.ctrl.Open(); err != nil {
		panic(err)
	}
	f.ctrl.Refresh(true)
	f.eval.reset()
	p := f.host.lastPane()
	p.writes = nil
	return p
}

func (f *fixture) checkInvariant() error {
	n := f.store.Len()
	sel := f.ctrl.Selected()
	if sel < -1 || sel >= n {
		return fmt.Errorf("selected %d outside [-1, %d)", sel, n)
	}
	if (sel == -1) != (n == 0) {
		return fmt.Errorf("selected %d with %d records", sel, n)
	}
	return nil
}

var errHost = errors.New("host failure")

func countPrefix(props map[string]string, prefix string) int {
	n := 0
	for k := range props {
		if strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}
