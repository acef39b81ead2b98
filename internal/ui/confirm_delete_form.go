package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmDeleteForm is a Bubble Tea component asking the user to confirm an
// item deletion before the optimistic operation starts.
type ConfirmDeleteForm struct {
	Completed bool
	Confirmed bool

	form   *huh.Form
	labels []string
}

// NewConfirmDeleteForm creates a confirmation form for the given items.
func NewConfirmDeleteForm(labels []string) *ConfirmDeleteForm {
	cf := &ConfirmDeleteForm{labels: labels}

	title := fmt.Sprintf("Delete %d items?", len(labels))
	description := "The items are removed from the list immediately and restored if the portal rejects the deletion."
	if len(labels) == 1 {
		title = fmt.Sprintf("Delete %q?", labels[0])
	}

	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&cf.Confirmed),
		),
	)

	return cf
}

func (cf *ConfirmDeleteForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *ConfirmDeleteForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			cf.Completed = true
			cf.Confirmed = false
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
	}

	return cf, cmd
}

func (cf *ConfirmDeleteForm) View() string {
	return cf.form.View()
}
