package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridian-tui/meridian/internal/theme"
)

// Dialog wraps any tea.Model content and adds a consistent header with the
// application name and dialog title. Composition via delegation: Dialog
// handles structure, content handles its own logic.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a dialog wrapper around content.
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{content: content, title: title}
}

// Init delegates to the wrapped content.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view.
func (d *Dialog) View() string {
	header := theme.AppNameStyle.Render("meridian") + " " + theme.SubtitleStyle.Render(d.title) + "\n\n"
	return header + d.content.View()
}

// Content returns the wrapped content for type assertion after Update.
func (d *Dialog) Content() tea.Model {
	return d.content
}
