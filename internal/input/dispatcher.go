package input

// Dispatcher turns raw key events into actions. It owns the live ViewState
// for every registered view and applies built-in mode transitions itself;
// any other resolved action is returned for the command layer to interpret.
// Exactly one resolution happens per key event, synchronously — there is no
// queueing or debouncing here.
type Dispatcher struct {
	registry *Registry
	states   map[string]*ViewState
}

// NewDispatcher creates a dispatcher over an injected registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		states:   make(map[string]*ViewState),
	}
}

// RegisterView creates (or returns the existing) state for a view.
func (d *Dispatcher) RegisterView(viewID string) *ViewState {
	if state, ok := d.states[viewID]; ok {
		return state
	}
	state := NewViewState(viewID)
	d.states[viewID] = state
	return state
}

// State returns the live state for a view, or nil if never registered.
func (d *Dispatcher) State(viewID string) *ViewState {
	return d.states[viewID]
}

// HandleKey resolves a key event against the view's current mode. Built-in
// mode transitions are applied to the view state before returning, so the
// caller sees the post-transition mode; the returned action lets it react
// (focus a search box, redraw the footer). Non-builtin actions come back
// untouched for the external command dispatcher. An unregistered view or
// unbound key yields ActionNone.
func (d *Dispatcher) HandleKey(viewID, keyName string) Action {
	state, ok := d.states[viewID]
	if !ok {
		return ActionNone
	}

	action := d.registry.ResolveAction(viewID, keyName, state.Mode(), state)
	switch action {
	case ActionToggleSelection:
		state.ToggleSelection(state.CurrentItemID)
	case ActionClearSelection:
		state.ClearSelection()
	case ActionOpenSearch:
		state.OpenSearch()
	case ActionCloseSearch:
		state.CloseSearch()
	case ActionOpenInput:
		state.OpenInput()
	case ActionCloseInput:
		state.CloseInput()
	case ActionEscape:
		state.Escape()
	}
	return action
}

// Shortcuts returns the footer projection for the view's current mode.
func (d *Dispatcher) Shortcuts(viewID string) []Binding {
	state, ok := d.states[viewID]
	if !ok {
		return nil
	}
	return d.registry.ListShortcuts(viewID, state.Mode(), state)
}
