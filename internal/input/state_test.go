package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewState_StartsInNavigation(t *testing.T) {
	state := NewViewState("items")
	assert.Equal(t, ModeNavigation, state.Mode())
	assert.Equal(t, 0, state.SelectionCount())
}

func TestViewState_ModeFollowsSelection(t *testing.T) {
	state := NewViewState("items")

	state.ToggleSelection("itm-001")
	assert.Equal(t, ModeSelection, state.Mode())

	state.ToggleSelection("itm-001")
	assert.Equal(t, ModeNavigation, state.Mode())
}

func TestViewState_ToggleSelection(t *testing.T) {
	state := NewViewState("items")

	state.ToggleSelection("itm-001")
	state.ToggleSelection("itm-002")
	assert.True(t, state.IsSelected("itm-001"))
	assert.True(t, state.IsSelected("itm-002"))
	assert.Equal(t, 2, state.SelectionCount())

	state.ToggleSelection("itm-001")
	assert.False(t, state.IsSelected("itm-001"))
	assert.Equal(t, 1, state.SelectionCount())
}

func TestViewState_ToggleSelectionEmptyIDIsNoop(t *testing.T) {
	state := NewViewState("items")
	state.ToggleSelection("")
	assert.Equal(t, 0, state.SelectionCount())
	assert.Equal(t, ModeNavigation, state.Mode())
}

func TestViewState_ClearSelection(t *testing.T) {
	state := NewViewState("items")
	state.ToggleSelection("itm-001")
	state.ToggleSelection("itm-002")

	state.ClearSelection()
	assert.Equal(t, 0, state.SelectionCount())
	assert.Equal(t, ModeNavigation, state.Mode())
}

func TestViewState_SelectedIDsSorted(t *testing.T) {
	state := NewViewState("items")
	state.ToggleSelection("itm-003")
	state.ToggleSelection("itm-001")
	state.ToggleSelection("itm-002")

	assert.Equal(t, []string{"itm-001", "itm-002", "itm-003"}, state.SelectedIDs())
}

func TestViewState_SearchOverlayRemembersSelection(t *testing.T) {
	state := NewViewState("items")
	state.ToggleSelection("itm-001")
	assert.Equal(t, ModeSelection, state.Mode())

	state.OpenSearch()
	assert.Equal(t, ModeSearch, state.Mode())

	state.CloseSearch()
	assert.Equal(t, ModeSelection, state.Mode())
	assert.True(t, state.IsSelected("itm-001"))
}

func TestViewState_OpenSearchIsIdempotent(t *testing.T) {
	state := NewViewState("items")
	state.OpenSearch()
	state.OpenSearch()

	state.CloseSearch()
	assert.Equal(t, ModeNavigation, state.Mode())
}

func TestViewState_InputOverlaysSearch(t *testing.T) {
	state := NewViewState("items")
	state.OpenSearch()
	state.OpenInput()
	assert.Equal(t, ModeInput, state.Mode())

	state.CloseInput()
	assert.Equal(t, ModeSearch, state.Mode())
}

func TestViewState_CloseSearchOnlyWhenInnermost(t *testing.T) {
	state := NewViewState("items")
	state.OpenSearch()
	state.OpenInput()

	state.CloseSearch()
	assert.Equal(t, ModeInput, state.Mode())
}

func TestViewState_EscapeClosesInnermostOverlay(t *testing.T) {
	state := NewViewState("items")
	state.ToggleSelection("itm-001")
	state.OpenSearch()
	state.OpenInput()

	state.Escape()
	assert.Equal(t, ModeSearch, state.Mode())

	state.Escape()
	assert.Equal(t, ModeSelection, state.Mode())
}

func TestViewState_EscapeAtOutermostIsNoop(t *testing.T) {
	state := NewViewState("items")

	state.Escape()
	assert.Equal(t, ModeNavigation, state.Mode())

	state.ToggleSelection("itm-001")
	state.Escape()
	assert.Equal(t, ModeSelection, state.Mode())
	assert.True(t, state.IsSelected("itm-001"))
}
