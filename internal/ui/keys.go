package ui

import (
	"sort"

	"github.com/meridian-tui/meridian/internal/config"
	"github.com/meridian-tui/meridian/internal/input"
)

// View identifiers
const (
	ViewGroups = "groups"
	ViewItems  = "items"
	ViewUsers  = "users"
)

// Command-layer actions, resolved by the model after dispatch. The built-in
// mode transitions live in the input package.
const (
	ActionCursorDown    input.Action = "cursor_down"
	ActionCursorUp      input.Action = "cursor_up"
	ActionCycleSharing  input.Action = "cycle_sharing"
	ActionCycleUserRole input.Action = "cycle_user_role"
	ActionDeleteItems   input.Action = "delete_items"
	ActionHelp          input.Action = "help"
	ActionQuit          input.Action = "quit"
	ActionRefresh       input.Action = "refresh"
	ActionToggleUser    input.Action = "toggle_user_disabled"
	ActionViewGroups    input.Action = "view_groups"
	ActionViewItems     input.Action = "view_items"
	ActionViewUsers     input.Action = "view_users"
)

// listModes are the modes in which list-level shortcuts apply. Search and
// input modes route keys to the focused text field instead.
var listModes = []input.Mode{input.ModeNavigation, input.ModeSelection}

// keyDefinition declares one configurable binding: which scope it lives in,
// its default keys, and its footer/help metadata. The single source of
// truth for key names, defaults, and help text.
type keyDefinition struct {
	action    input.Action
	available func(*input.ViewState) bool
	defaults  []string
	help      string
	modes     []input.Mode
	name      string
	priority  int
	scope     string // "" = global
}

var allKeyDefinitions = []keyDefinition{
	// Global keys
	{name: "quit", action: ActionQuit, defaults: []string{"q", "ctrl+c"}, help: "quit", modes: listModes, priority: 10},
	{name: "help", action: ActionHelp, defaults: []string{"?"}, help: "help", modes: listModes, priority: 9},
	{name: "refresh", action: ActionRefresh, defaults: []string{"R"}, help: "refresh", modes: listModes, priority: 8},
	{name: "view_items", action: ActionViewItems, defaults: []string{"1"}, help: "items", modes: listModes, priority: 7},
	{name: "view_users", action: ActionViewUsers, defaults: []string{"2"}, help: "users", modes: listModes, priority: 7},
	{name: "view_groups", action: ActionViewGroups, defaults: []string{"3"}, help: "groups", modes: listModes, priority: 7},
	{name: "escape", action: input.ActionEscape, defaults: []string{"esc"}, help: "back"},
	{name: "accept_search", action: input.ActionCloseSearch, defaults: []string{"enter"}, help: "apply search", modes: []input.Mode{input.ModeSearch}},

	// Navigation, shared by every view
	{name: "down", action: ActionCursorDown, defaults: []string{"j", "down"}, help: "down", modes: listModes, priority: 1},
	{name: "up", action: ActionCursorUp, defaults: []string{"k", "up"}, help: "up", modes: listModes, priority: 1},
	{name: "search", action: input.ActionOpenSearch, defaults: []string{"/"}, help: "search", modes: listModes, priority: 6},

	// Items view
	{name: "select", action: input.ActionToggleSelection, defaults: []string{"x"}, help: "select", modes: listModes, priority: 2, scope: ViewItems,
		available: hasCurrentItem},
	{name: "clear_selection", action: input.ActionClearSelection, defaults: []string{"c"}, help: "clear selection", modes: []input.Mode{input.ModeSelection}, priority: 3, scope: ViewItems},
	{name: "delete", action: ActionDeleteItems, defaults: []string{"d"}, help: "delete", modes: listModes, priority: 4, scope: ViewItems,
		available: hasTarget},
	{name: "share", action: ActionCycleSharing, defaults: []string{"s"}, help: "cycle sharing", modes: listModes, priority: 5, scope: ViewItems,
		available: hasTarget},

	// Users view
	{name: "toggle_disabled", action: ActionToggleUser, defaults: []string{"d"}, help: "enable/disable", modes: listModes, priority: 4, scope: ViewUsers,
		available: hasCurrentItem},
	{name: "cycle_role", action: ActionCycleUserRole, defaults: []string{"r"}, help: "cycle role", modes: listModes, priority: 5, scope: ViewUsers,
		available: hasCurrentItem},
}

func hasCurrentItem(state *input.ViewState) bool {
	return state.CurrentItemID != ""
}

func hasTarget(state *input.ViewState) bool {
	return state.CurrentItemID != "" || state.SelectionCount() > 0
}

// ValidKeyNames returns the overridable binding names in sorted order, for
// settings validation.
func ValidKeyNames() []string {
	names := make([]string, len(allKeyDefinitions))
	for i, def := range allKeyDefinitions {
		names[i] = def.name
	}
	sort.Strings(names)
	return names
}

// BuildRegistry constructs the keymap registry from the definition table,
// applying settings overrides. Duplicate keys inside one scope surface as
// errors here, at startup.
func BuildRegistry(keysConfig config.KeyBindingsConfig) (*input.Registry, error) {
	scopes := map[string][]input.Binding{}
	for _, def := range allKeyDefinitions {
		keys := []string(keysConfig[def.name])
		if len(keys) == 0 {
			keys = def.defaults
		}
		for _, keyName := range keys {
			scopes[def.scope] = append(scopes[def.scope], input.Binding{
				Action:    def.action,
				Available: def.available,
				Key:       keyName,
				Label:     def.help,
				Modes:     def.modes,
				Priority:  def.priority,
			})
		}
	}

	registry := input.NewRegistry()
	global, err := input.NewKeymap("global", scopes[""])
	if err != nil {
		return nil, err
	}
	registry.RegisterGlobalKeymap(global)

	for _, viewID := range []string{ViewItems, ViewUsers, ViewGroups} {
		km, err := input.NewKeymap(viewID, scopes[viewID])
		if err != nil {
			return nil, err
		}
		registry.RegisterViewKeymap(km)
	}
	return registry, nil
}
