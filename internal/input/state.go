package input

import "sort"

// ViewState holds the interaction mode and selection of one live view.
// The base mode follows the selection set (Selection while non-empty,
// Navigation otherwise); search and input sit on an overlay stack above it
// so that closing an overlay restores whatever mode was active before,
// selection included. All mutation goes through the methods; the rendering
// layer only reads.
type ViewState struct {
	CurrentItemID string
	ViewID        string

	overlays []Mode
	selected map[string]struct{}
}

// NewViewState creates the state for a view, starting in Navigation mode.
func NewViewState(viewID string) *ViewState {
	return &ViewState{
		ViewID:   viewID,
		selected: make(map[string]struct{}),
	}
}

// Mode returns the current interaction mode: the innermost overlay if one
// is open, otherwise Selection or Navigation depending on the selection set.
func (s *ViewState) Mode() Mode {
	if n := len(s.overlays); n > 0 {
		return s.overlays[n-1]
	}
	if len(s.selected) > 0 {
		return ModeSelection
	}
	return ModeNavigation
}

// ToggleSelection adds id to the selection if absent, removes it if present.
func (s *ViewState) ToggleSelection(id string) {
	if id == "" {
		return
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// ClearSelection empties the selection set, reverting the base mode to
// Navigation.
func (s *ViewState) ClearSelection() {
	s.selected = make(map[string]struct{})
}

// IsSelected reports whether id is in the selection set.
func (s *ViewState) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedIDs returns the selection in sorted order.
func (s *ViewState) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectionCount returns the number of selected items.
func (s *ViewState) SelectionCount() int {
	return len(s.selected)
}

// OpenSearch focuses the search overlay. No-op if search is already open.
func (s *ViewState) OpenSearch() {
	s.openOverlay(ModeSearch)
}

// CloseSearch closes the search overlay if it is the innermost one.
func (s *ViewState) CloseSearch() {
	s.closeOverlay(ModeSearch)
}

// OpenInput focuses a free-text input overlay. No-op if already open.
func (s *ViewState) OpenInput() {
	s.openOverlay(ModeInput)
}

// CloseInput closes the input overlay if it is the innermost one.
func (s *ViewState) CloseInput() {
	s.closeOverlay(ModeInput)
}

// Escape closes the innermost overlay. At the outermost level it is a
// no-op; quitting the application is a distinct global action.
func (s *ViewState) Escape() {
	if n := len(s.overlays); n > 0 {
		s.overlays = s.overlays[:n-1]
	}
}

func (s *ViewState) openOverlay(mode Mode) {
	if !mode.isOverlay() || s.Mode() == mode {
		return
	}
	s.overlays = append(s.overlays, mode)
}

func (s *ViewState) closeOverlay(mode Mode) {
	if n := len(s.overlays); n > 0 && s.overlays[n-1] == mode {
		s.overlays = s.overlays[:n-1]
	}
}
