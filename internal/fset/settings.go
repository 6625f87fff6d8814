package fset

import (
	"github.com/rshade/fastset/internal/option"
)

// Column is one fixed-width field of a rendered row.
type Column struct {
	Field        string
	DefaultWidth int
}

// Columns lists the rendered fields in order.
//
//nolint:gochecknoglobals // Fixed column table.
var Columns = [...]Column{
	{Field: option.FieldName, DefaultWidth: 64},
	{Field: option.FieldType, DefaultWidth: 8},
	{Field: option.FieldDefaultValue, DefaultWidth: 16},
	{Field: option.FieldValue, DefaultWidth: 16},
}

// ColorPair holds the color of a field on a normal row and on the selected row.
type ColorPair [2]string

// Settings controls rendering and key bindings.
type Settings struct {
	// UseKeys binds meta-<key> shortcuts for the option actions.
	UseKeys bool
	// Format is the template of every row but the selected one.
	Format string
	// FormatCurrent is the template of the selected row.
	FormatCurrent string
	// Colors maps a column field to its color pair.
	Colors map[string]ColorPair
}

// Default templates.
const (
	DefaultFormat        = "  ${color_name}${name} ${color_type}${type} ${color_default_value}${default_value} ${color_value}${value}"
	DefaultFormatCurrent = "${color:,blue}> ${color_name}${name} ${color_type}${type} ${color_default_value}${default_value} ${color_value}${value}"
)

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		UseKeys:       true,
		Format:        DefaultFormat,
		FormatCurrent: DefaultFormatCurrent,
		Colors: map[string]ColorPair{
			option.FieldName:         {"default", "white"},
			option.FieldType:         {"green", "lightgreen"},
			option.FieldDefaultValue: {"default", "white"},
			option.FieldValue:        {"cyan", "lightcyan"},
		},
	}
}

func (s Settings) color(field string, selected bool) string {
	pair := s.Colors[field]
	if selected {
		return pair[1]
	}
	return pair[0]
}
