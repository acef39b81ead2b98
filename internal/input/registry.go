package input

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxShortcuts caps the footer/help projection returned by ListShortcuts.
const MaxShortcuts = 8

// Registry stores the global keymap and one keymap per view and resolves
// raw keys into actions. It is an explicitly constructed instance, injected
// wherever needed, so tests can run isolated registries side by side.
type Registry struct {
	global *Keymap
	views  map[string]*Keymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]*Keymap)}
}

// RegisterGlobalKeymap sets the scope-free fallback keymap.
// Registering again replaces the previous table (last write wins).
func (r *Registry) RegisterGlobalKeymap(km *Keymap) {
	r.global = km
}

// RegisterViewKeymap inserts or replaces the keymap for km.ViewID.
// Replacement is intentional hot-reload behavior, not an error.
func (r *Registry) RegisterViewKeymap(km *Keymap) {
	r.views[km.ViewID] = km
}

// ResolveAction resolves key for the given view and mode. The view table is
// consulted first so views can shadow global keys; the global table is the
// fallback. Returns ActionNone when no qualifying binding exists.
func (r *Registry) ResolveAction(viewID, keyName string, mode Mode, state *ViewState) Action {
	if km, ok := r.views[viewID]; ok {
		if b, found := km.lookup(keyName); found && b.qualifies(mode, state) {
			return b.Action
		}
	}
	if r.global != nil {
		if b, found := r.global.lookup(keyName); found && b.qualifies(mode, state) {
			return b.Action
		}
	}
	return ActionNone
}

// ListShortcuts returns the bindings to show in the footer for the given
// view and mode: qualifying global and view bindings, view entries shadowing
// global ones on the same key, sorted by ascending priority with ties kept
// in registration order (globals first), filtered to single-rune and ctrl+
// keys, and truncated to MaxShortcuts. Display projection only; resolution
// never consults it.
func (r *Registry) ListShortcuts(viewID string, mode Mode, state *ViewState) []Binding {
	var shortcuts []Binding
	index := make(map[string]int)

	if r.global != nil {
		for _, b := range r.global.Bindings() {
			if !b.qualifies(mode, state) {
				continue
			}
			index[b.Key] = len(shortcuts)
			shortcuts = append(shortcuts, b)
		}
	}
	if km, ok := r.views[viewID]; ok {
		for _, b := range km.Bindings() {
			if !b.qualifies(mode, state) {
				continue
			}
			if i, shadowed := index[b.Key]; shadowed {
				shortcuts[i] = b
				continue
			}
			index[b.Key] = len(shortcuts)
			shortcuts = append(shortcuts, b)
		}
	}

	filtered := shortcuts[:0]
	for _, b := range shortcuts {
		if displayableKey(b.Key) {
			filtered = append(filtered, b)
		}
	}
	shortcuts = filtered

	sort.SliceStable(shortcuts, func(i, j int) bool {
		return shortcuts[i].Priority < shortcuts[j].Priority
	})

	if len(shortcuts) > MaxShortcuts {
		shortcuts = shortcuts[:MaxShortcuts]
	}
	return shortcuts
}

// displayableKey keeps the footer legible: single runes and ctrl chords only.
func displayableKey(keyName string) bool {
	return utf8.RuneCountInString(keyName) == 1 || strings.HasPrefix(keyName, "ctrl+")
}
