package option

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultOptions []byte

// Source produces a fresh option list each time the store reloads.
type Source func() ([]*Option, error)

// optionFile is the on-disk layout of an option file.
type optionFile struct {
	Options []*Option `yaml:"options"`
}

// Load parses an option file from r. Options are returned sorted by name.
// An option without a type is treated as a string; an option without a value
// takes its default value.
func Load(r io.Reader) ([]*Option, error) {
	var f optionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []*Option{}, nil
		}
		return nil, fmt.Errorf("parsing options: %w", err)
	}

	seen := make(map[string]bool, len(f.Options))
	for i, o := range f.Options {
		if o == nil || o.Name == "" {
			return nil, fmt.Errorf("option #%d: missing name", i+1)
		}
		if seen[o.Name] {
			return nil, fmt.Errorf("option %s: duplicate name", o.Name)
		}
		seen[o.Name] = true
		if o.Type == "" {
			o.Type = TypeString
		}
		if o.Value == "" && o.DefaultValue != "" {
			o.Value = o.DefaultValue
		}
	}

	sort.Slice(f.Options, func(i, j int) bool {
		return f.Options[i].Name < f.Options[j].Name
	})
	return f.Options, nil
}

// LoadFile parses the option file at path.
func LoadFile(path string) ([]*Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading option file %s: %w", path, err)
	}
	opts, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// FileSource returns a Source reading path on every reload.
// An empty path yields the built-in option set.
func FileSource(path string) Source {
	if path == "" {
		return DefaultSource()
	}
	return func() ([]*Option, error) {
		return LoadFile(path)
	}
}

// DefaultSource returns a Source for the embedded option set.
func DefaultSource() Source {
	return func() ([]*Option, error) {
		return Load(bytes.NewReader(defaultOptions))
	}
}

// StaticSource returns a Source that always yields copies of opts.
func StaticSource(opts []*Option) Source {
	return func() ([]*Option, error) {
		out := make([]*Option, len(opts))
		for i, o := range opts {
			c := *o
			c.Values = append([]string(nil), o.Values...)
			out[i] = &c
		}
		return out, nil
	}
}
