package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridian-tui/meridian/internal/config"
	"github.com/meridian-tui/meridian/internal/input"
	"github.com/meridian-tui/meridian/internal/logging"
	"github.com/meridian-tui/meridian/internal/ui"
)

// RunCmd starts the interactive control panel
type RunCmd struct{}

// Run executes the default TUI command
func (r *RunCmd) Run(cli *CLI) error {
	var keysConfig config.KeyBindingsConfig
	if settings := cli.Settings(); settings != nil {
		keysConfig = settings.Keys
	}

	registry, err := ui.BuildRegistry(keysConfig)
	if err != nil {
		return fmt.Errorf("invalid key configuration: %w", err)
	}
	dispatcher := input.NewDispatcher(registry)

	container := cli.Container
	model := ui.NewModel(
		dispatcher,
		container.Notifications,
		container.ItemService,
		container.UserService,
		container.GroupService,
	)

	logging.Logger.Info("Starting meridian TUI")
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
