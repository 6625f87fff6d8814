package tui

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// colorIndex maps color names to the 16 basic terminal colors.
//
//nolint:gochecknoglobals // Static color table.
var colorIndex = map[string]int{
	"black":        0,
	"red":          1,
	"green":        2,
	"brown":        3,
	"blue":         4,
	"magenta":      5,
	"cyan":         6,
	"gray":         7,
	"darkgray":     8,
	"lightred":     9,
	"lightgreen":   10,
	"yellow":       11,
	"lightblue":    12,
	"lightmagenta": 13,
	"lightcyan":    14,
	"white":        15,
}

// attributes maps color name prefixes to SGR attributes.
//
//nolint:gochecknoglobals // Static attribute table.
var attributes = map[byte]string{
	'*': termenv.BoldSeq,
	'/': termenv.ItalicSeq,
	'_': termenv.UnderlineSeq,
	'!': termenv.ReverseSeq,
}

// Default foreground and background SGR codes.
const (
	defaultForeground = "39"
	defaultBackground = "49"
	maxColor          = 255
)

// Colors turns color names into escape sequences for a terminal profile.
//
// A name is "fg" or "fg,bg". Each part is a basic color name ("lightcyan"),
// "default", a 256-color number or "#rrggbb". The foreground may start with
// attributes: "*" bold, "/" italic, "_" underline, "!" reverse. "reset"
// resets every color and attribute.
type Colors struct {
	profile termenv.Profile
}

// NewColors creates colors for profile.
func NewColors(profile termenv.Profile) *Colors {
	return &Colors{profile: profile}
}

// DetectColors creates colors for the profile of the environment.
func DetectColors() *Colors {
	return NewColors(termenv.EnvColorProfile())
}

// NoColors returns colors that never emit escape sequences.
func NoColors() *Colors {
	return NewColors(termenv.Ascii)
}

// Color returns the escape sequence for name, or "" when the profile has no
// colors or name is not a color.
func (c *Colors) Color(name string) string {
	if c.profile == termenv.Ascii || name == "" {
		return ""
	}
	if name == "reset" || name == "resetcolor" {
		return termenv.CSI + termenv.ResetSeq + "m"
	}

	fg, bg, hasBg := strings.Cut(name, ",")

	var codes []string
	for fg != "" {
		attr, ok := attributes[fg[0]]
		if !ok {
			break
		}
		codes = append(codes, attr)
		fg = fg[1:]
	}
	if seq := c.sequence(fg, false); seq != "" {
		codes = append(codes, seq)
	}
	if hasBg {
		if seq := c.sequence(bg, true); seq != "" {
			codes = append(codes, seq)
		}
	}

	if len(codes) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

func (c *Colors) sequence(name string, background bool) string {
	var color termenv.Color
	switch {
	case name == "":
		return ""
	case name == "default":
		if background {
			return defaultBackground
		}
		return defaultForeground
	case strings.HasPrefix(name, "#"):
		color = c.profile.Color(name)
	default:
		if i, ok := colorIndex[name]; ok {
			color = c.profile.Convert(termenv.ANSIColor(i))
		} else if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= maxColor {
			color = c.profile.Color(name)
		}
	}
	if color == nil {
		return ""
	}
	return color.Sequence(background)
}
