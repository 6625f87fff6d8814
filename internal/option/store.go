package option

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

// ChangeFunc is called after the store contents change.
// reset is true when the record set itself was replaced (filter change),
// false when only record contents changed.
type ChangeFunc func(reset bool)

// Store holds the loaded options and the filtered view browsed by the pane.
//
// The store is not safe for concurrent use; it is driven from the UI goroutine.
type Store struct {
	source Source
	logger zerolog.Logger

	// all contains every loaded option, sorted by name
	all []*Option

	// options is the filtered view, in display order
	options []*Option

	// filter is the current filter expression
	filter string

	// edits holds values changed during the session, re-applied on reload
	edits map[string]string

	// maxLength is the widest display width per field in the filtered view
	maxLength map[string]int

	listeners []ChangeFunc
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store logger.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty store reading from source. Call Reload to load it.
func NewStore(source Source, opts ...StoreOption) *Store {
	s := &Store{
		source:    source,
		logger:    zerolog.Nop(),
		edits:     make(map[string]string),
		maxLength: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to be called after filter and value changes.
func (s *Store) OnChange(fn ChangeFunc) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(reset bool) {
	for _, fn := range s.listeners {
		fn(reset)
	}
}

// Reload reads the source again, re-applies session edits and rebuilds the
// filtered view. It does not notify listeners; the caller refreshes.
// On error the previous contents are kept.
func (s *Store) Reload() error {
	opts, err := s.source()
	if err != nil {
		return fmt.Errorf("reloading options: %w", err)
	}
	for _, o := range opts {
		if v, ok := s.edits[o.Name]; ok {
			o.Value = v
		}
	}
	s.all = opts
	s.rebuild()
	s.logger.Debug().
		Int("loaded", len(s.all)).
		Int("visible", len(s.options)).
		Str("filter", s.filter).
		Msg("options reloaded")
	return nil
}

// Filter replaces the filter expression, rebuilds the view and notifies listeners.
func (s *Store) Filter(text string) {
	s.filter = text
	s.rebuild()
	s.logger.Debug().Str("filter", text).Int("visible", len(s.options)).Msg("options filtered")
	s.notify(true)
}

// FilterText returns the current filter expression.
func (s *Store) FilterText() string {
	return s.filter
}

// Clear empties the filtered view. Loaded options and edits are kept.
func (s *Store) Clear() {
	s.options = nil
	clear(s.maxLength)
}

// Len returns the number of options in the filtered view.
func (s *Store) Len() int {
	return len(s.options)
}

// Total returns the number of loaded options.
func (s *Store) Total() int {
	return len(s.all)
}

// Get returns the option at index i of the filtered view, or nil when out of range.
func (s *Store) Get(i int) *Option {
	if i < 0 || i >= len(s.options) {
		return nil
	}
	return s.options[i]
}

// At returns the option at index i of the filtered view as a Record,
// or nil when out of range.
func (s *Store) At(i int) Record {
	o := s.Get(i)
	if o == nil {
		return nil
	}
	return o
}

// Lookup returns the loaded option with the given name.
func (s *Store) Lookup(name string) (*Option, bool) {
	for _, o := range s.all {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// MaxLength returns the widest display width of field across the filtered view.
// ok is false when the view is empty.
func (s *Store) MaxLength(field string) (int, bool) {
	n, ok := s.maxLength[field]
	return n, ok
}

// Apply runs action on the option at index i of the filtered view.
func (s *Store) Apply(action Action, i int) error {
	o := s.Get(i)
	if o == nil {
		return fmt.Errorf("%s #%d: %w", action, i, ErrOutOfRange)
	}
	if err := apply(o, action); err != nil {
		return err
	}
	s.record(o)
	s.logger.Debug().Str("action", action.String()).Str("option", o.Name).Str("value", o.Value).Msg("option changed")
	s.notify(false)
	return nil
}

// Set replaces the value of the named option after checking it against the option type.
func (s *Store) Set(name, value string) error {
	o, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("option %q not found", name)
	}
	if err := validate(o, value); err != nil {
		return err
	}
	o.Value = value
	s.record(o)
	s.notify(false)
	return nil
}

// Append appends text to the value of the named string option.
func (s *Store) Append(name, text string) error {
	o, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("option %q not found", name)
	}
	if o.Type != TypeString {
		return fmt.Errorf("%s on %s: %w", ActionAppend, o.Type, ErrUnsupported)
	}
	value := text
	if !o.IsNull() {
		value = o.Value + text
	}
	return s.Set(name, value)
}

func (s *Store) record(o *Option) {
	s.edits[o.Name] = o.Value
	s.measure()
}

func (s *Store) rebuild() {
	s.options = applyFilter(s.all, s.filter)
	s.measure()
}

func (s *Store) measure() {
	clear(s.maxLength)
	if len(s.options) == 0 {
		return
	}
	for _, field := range []string{FieldName, FieldType, FieldDefaultValue, FieldValue} {
		widest := 0
		for _, o := range s.options {
			widest = max(widest, runewidth.StringWidth(o.Field(field)))
		}
		s.maxLength[field] = widest
	}
}
