package ui

import (
	"strings"

	"github.com/meridian-tui/meridian/internal/theme"
)

// helpView renders the full shortcut reference, grouped by scope. Unlike
// the footer this list is not truncated or priority-filtered.
func (m *Model) helpView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")

	groups := []struct {
		scope string
		title string
	}{
		{scope: "", title: "Global"},
		{scope: ViewItems, title: "Items"},
		{scope: ViewUsers, title: "Users"},
	}

	for _, group := range groups {
		b.WriteString(theme.HelpGroupStyle.Render(group.title))
		b.WriteString("\n")
		for _, def := range allKeyDefinitions {
			if def.scope != group.scope || def.help == "" {
				continue
			}
			keys := strings.Join(def.defaults, "/")
			b.WriteString(theme.HelpKeyStyle.Render(keys))
			b.WriteString(theme.HelpDescStyle.Render(def.help))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render("press esc to close"))
	return b.String()
}
