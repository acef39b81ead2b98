package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// Action identifies what a key binding does. The dispatcher interprets the
// built-in mode-transition actions itself; everything else is handed to the
// command layer untouched.
type Action string

const (
	ActionNone Action = ""

	// Built-in mode transitions, applied directly to view state
	ActionClearSelection  Action = "clear_selection"
	ActionCloseInput      Action = "close_input"
	ActionCloseSearch     Action = "close_search"
	ActionEscape          Action = "escape"
	ActionOpenInput       Action = "open_input"
	ActionOpenSearch      Action = "open_search"
	ActionToggleSelection Action = "toggle_selection"
)

// IsBuiltin reports whether the action is a mode transition handled by the
// dispatcher rather than the command layer.
func (a Action) IsBuiltin() bool {
	switch a {
	case ActionClearSelection, ActionCloseInput, ActionCloseSearch,
		ActionEscape, ActionOpenInput, ActionOpenSearch, ActionToggleSelection:
		return true
	}
	return false
}

// DefaultPriority is the display priority assigned to bindings that leave
// Priority at its zero value.
const DefaultPriority = 5

// MaxPriority is the highest (last-displayed) priority a binding may carry.
const MaxPriority = 10

// Binding associates a key with an action for display and resolution.
// An empty Modes slice means the binding applies in every mode. Available,
// when set, gates the binding on current view state. Priority orders the
// footer/help projection: lower sorts first, 0 means DefaultPriority.
type Binding struct {
	Action    Action
	Available func(*ViewState) bool
	Key       string
	Label     string
	Modes     []Mode
	Priority  int
}

// qualifies reports whether the binding is honored in the given mode and state.
func (b Binding) qualifies(mode Mode, state *ViewState) bool {
	if len(b.Modes) > 0 {
		found := false
		for _, m := range b.Modes {
			if m == mode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if b.Available != nil && !b.Available(state) {
		return false
	}
	return true
}

// KeyBinding converts the binding to a bubbles key.Binding for help surfaces.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Key),
		key.WithHelp(b.Key, b.Label),
	)
}

// Keymap is a validated table of bindings for one scope: a single view, or
// the global fallback scope. Built once at startup and never mutated after.
type Keymap struct {
	ViewID string

	bindings map[string]Binding
	order    []string
}

// NewKeymap builds a keymap for viewID, validating the binding table.
// Duplicate keys, missing fields, and out-of-range priorities are
// configuration defects and fail construction.
func NewKeymap(viewID string, bindings []Binding) (*Keymap, error) {
	km := &Keymap{
		ViewID:   viewID,
		bindings: make(map[string]Binding, len(bindings)),
	}
	for _, b := range bindings {
		if b.Key == "" {
			return nil, fmt.Errorf("keymap %q: binding %q has no key", viewID, b.Action)
		}
		if b.Action == ActionNone {
			return nil, fmt.Errorf("keymap %q: key %q has no action", viewID, b.Key)
		}
		if b.Priority < 0 || b.Priority > MaxPriority {
			return nil, fmt.Errorf("keymap %q: key %q priority %d out of range", viewID, b.Key, b.Priority)
		}
		if existing, dup := km.bindings[b.Key]; dup {
			return nil, fmt.Errorf("keymap %q: key %q bound to both %q and %q", viewID, b.Key, existing.Action, b.Action)
		}
		if b.Priority == 0 {
			b.Priority = DefaultPriority
		}
		km.bindings[b.Key] = b
		km.order = append(km.order, b.Key)
	}
	return km, nil
}

// MustKeymap is NewKeymap that panics on invalid tables. Intended for the
// static binding tables defined at startup.
func MustKeymap(viewID string, bindings []Binding) *Keymap {
	km, err := NewKeymap(viewID, bindings)
	if err != nil {
		panic(err)
	}
	return km
}

// lookup returns the binding for key and whether it exists.
func (k *Keymap) lookup(keyName string) (Binding, bool) {
	b, ok := k.bindings[keyName]
	return b, ok
}

// Bindings returns the bindings in registration order.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.order))
	for _, keyName := range k.order {
		out = append(out, k.bindings[keyName])
	}
	return out
}
