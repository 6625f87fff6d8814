// Package option provides the option store browsed by the fast set pane.
//
// Options are loaded from a YAML source (a file or the embedded default set),
// narrowed with a filter expression and mutated in place by the pane actions
// (toggle, increase, decrease, reset, unset, set, append).
package option

import (
	"strconv"
)

// Option types.
const (
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeString  = "string"
	TypeColor   = "color"
	TypeEnum    = "enum"
)

// Field names readable through Field.
const (
	FieldName         = "name"
	FieldType         = "type"
	FieldDefaultValue = "default_value"
	FieldValue        = "value"
)

// Record is a read-only view of one option, addressed by field name.
type Record interface {
	Field(name string) string
}

// nullValue is displayed for options without a value.
const nullValue = "null"

// Option is a single configuration option.
type Option struct {
	Name         string   `yaml:"name"`
	Type         string   `yaml:"type"`
	DefaultValue string   `yaml:"default"`
	Value        string   `yaml:"value"`
	Min          int      `yaml:"min,omitempty"`
	Max          int      `yaml:"max,omitempty"`
	Values       []string `yaml:"values,omitempty"`
	Nullable     bool     `yaml:"nullable,omitempty"`
	Description  string   `yaml:"description,omitempty"`
}

// Field returns the textual value of the named field, or "" for unknown fields.
func (o *Option) Field(name string) string {
	switch name {
	case FieldName:
		return o.Name
	case FieldType:
		return o.Type
	case FieldDefaultValue:
		return o.DefaultValue
	case FieldValue:
		return o.Value
	case "min":
		return strconv.Itoa(o.Min)
	case "max":
		return strconv.Itoa(o.Max)
	case "description":
		return o.Description
	default:
		return ""
	}
}

// Changed reports whether the current value differs from the default.
func (o *Option) Changed() bool {
	return o.Value != o.DefaultValue
}

// IsNull reports whether the option currently has no value.
func (o *Option) IsNull() bool {
	return o.Value == nullValue
}
