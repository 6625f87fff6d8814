package option

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is a mutation applied to a single option.
type Action int

const (
	// ActionToggle flips a boolean option.
	ActionToggle Action = iota
	// ActionIncrease adds one to an integer option or selects the next enum value.
	ActionIncrease
	// ActionDecrease subtracts one from an integer option or selects the previous enum value.
	ActionDecrease
	// ActionReset restores the default value.
	ActionReset
	// ActionUnset clears the value of a nullable option, otherwise resets it.
	ActionUnset
	// ActionSet replaces the value; it needs a value supplied by the user.
	ActionSet
	// ActionAppend appends to the value; it needs a value supplied by the user.
	ActionAppend
)

var (
	// ErrNeedsValue is returned by Apply for actions that need user input.
	ErrNeedsValue = errors.New("action needs a value")
	// ErrUnsupported is returned when an action does not apply to the option type.
	ErrUnsupported = errors.New("action not supported for option type")
	// ErrOutOfRange is returned when the option index is not in the filtered list.
	ErrOutOfRange = errors.New("option index out of range")
	// ErrInvalidValue is returned when a value does not fit the option type.
	ErrInvalidValue = errors.New("invalid value for option")
)

//nolint:gochecknoglobals // Static lookup table, index matches Action.
var actionNames = [...]string{
	ActionToggle:   "toggle",
	ActionIncrease: "increase",
	ActionDecrease: "decrease",
	ActionReset:    "reset",
	ActionUnset:    "unset",
	ActionSet:      "set",
	ActionAppend:   "append",
}

// String returns the command name of the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	all := make([]Action, len(actionNames))
	for i := range actionNames {
		all[i] = Action(i)
	}
	return all
}

// ParseAction returns the action with the given command name.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// apply mutates o according to a. Actions needing user input return ErrNeedsValue.
func apply(o *Option, a Action) error {
	switch a {
	case ActionToggle:
		return toggle(o)
	case ActionIncrease:
		return step(o, 1)
	case ActionDecrease:
		return step(o, -1)
	case ActionReset:
		o.Value = o.DefaultValue
		return nil
	case ActionUnset:
		if o.Nullable {
			o.Value = nullValue
		} else {
			o.Value = o.DefaultValue
		}
		return nil
	case ActionSet, ActionAppend:
		return ErrNeedsValue
	default:
		return fmt.Errorf("unknown action %d", int(a))
	}
}

func toggle(o *Option) error {
	if o.Type != TypeBoolean {
		return fmt.Errorf("%s on %s: %w", ActionToggle, o.Type, ErrUnsupported)
	}
	if o.Value == "on" {
		o.Value = "off"
	} else {
		o.Value = "on"
	}
	return nil
}

func step(o *Option, delta int) error {
	switch o.Type {
	case TypeInteger:
		n, err := strconv.Atoi(o.Value)
		if err != nil {
			n = 0
		}
		n += delta
		if o.Min != 0 || o.Max != 0 {
			n = max(o.Min, min(o.Max, n))
		}
		o.Value = strconv.Itoa(n)
		return nil
	case TypeEnum:
		if len(o.Values) == 0 {
			return fmt.Errorf("enum %s has no values: %w", o.Name, ErrUnsupported)
		}
		idx := 0
		for i, v := range o.Values {
			if v == o.Value {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(o.Values)) % len(o.Values)
		o.Value = o.Values[idx]
		return nil
	default:
		return fmt.Errorf("step on %s: %w", o.Type, ErrUnsupported)
	}
}

// validate checks that value fits the option type.
func validate(o *Option, value string) error {
	if value == nullValue {
		if o.Nullable {
			return nil
		}
		return fmt.Errorf("%s is not nullable: %w", o.Name, ErrInvalidValue)
	}
	switch o.Type {
	case TypeBoolean:
		if value != "on" && value != "off" {
			return fmt.Errorf("%s expects on/off, got %q: %w", o.Name, value, ErrInvalidValue)
		}
	case TypeInteger:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q: %w", o.Name, value, ErrInvalidValue)
		}
		if (o.Min != 0 || o.Max != 0) && (n < o.Min || n > o.Max) {
			return fmt.Errorf("%s must be in [%d, %d]: %w", o.Name, o.Min, o.Max, ErrInvalidValue)
		}
	case TypeEnum:
		for _, v := range o.Values {
			if v == value {
				return nil
			}
		}
		return fmt.Errorf("%s expects one of %s: %w", o.Name, strings.Join(o.Values, ", "), ErrInvalidValue)
	}
	return nil
}
