package ui

import (
	"fmt"
	"strings"

	"github.com/meridian-tui/meridian/internal/input"
	"github.com/meridian-tui/meridian/internal/theme"
)

// footerView renders the mode indicator and the shortcut bar. The shortcut
// list is the registry's display projection for the current view and mode:
// already priority-sorted, filtered to legible keys, and capped.
func (m *Model) footerView() string {
	state := m.viewState()

	var parts []string
	for _, b := range m.dispatcher.Shortcuts(m.currentView) {
		parts = append(parts,
			theme.HelpShortcutStyle.Render(b.Key)+" "+theme.HelpLabelStyle.Render(b.Label))
	}

	mode := theme.ModeStyle.Render(strings.ToUpper(string(state.Mode())))
	if state.Mode() == input.ModeSelection {
		mode += theme.SelectedMarkStyle.Render(
			fmt.Sprintf(" %d selected", state.SelectionCount()))
	}

	return "\n" + mode + "  " + strings.Join(parts, " · ")
}
