package fset

import (
	"github.com/rshade/fastset/internal/option"
)

// shortcut ties an option action to the text typed in the pane and to its key.
type shortcut struct {
	input  string
	key    string
	action option.Action
}

// shortcuts is the single table behind both typed input and key bindings.
//
//nolint:gochecknoglobals // Static lookup table.
var shortcuts = [...]shortcut{
	{input: "t", key: "meta-t", action: option.ActionToggle},
	{input: "+", key: "meta-+", action: option.ActionIncrease},
	{input: "-", key: "meta--", action: option.ActionDecrease},
	{input: "r", key: "meta-r", action: option.ActionReset},
	{input: "u", key: "meta-u", action: option.ActionUnset},
	{input: "s", key: "meta-s", action: option.ActionSet},
	{input: "a", key: "meta-a", action: option.ActionAppend},
}

// Navigation keys, always bound.
const (
	keyUp   = "meta2-A"
	keyDown = "meta2-B"
)

func actionForInput(text string) (option.Action, bool) {
	for _, s := range shortcuts {
		if s.input == text {
			return s.action, true
		}
	}
	return 0, false
}
