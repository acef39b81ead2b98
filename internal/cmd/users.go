package cmd

import (
	"context"
	"fmt"

	"github.com/meridian-tui/meridian/internal/logging"
)

// UsersCmd groups user subcommands
type UsersCmd struct {
	List UsersListCmd `cmd:"" help:"List portal users" default:"1"`
}

// UsersListCmd prints the portal members without starting the TUI
type UsersListCmd struct {
	Disabled bool `help:"Show only disabled accounts"`
}

// Run executes the users list command
func (u *UsersListCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing users list command", "disabled_only", u.Disabled)

	if err := cli.Container.UserService.Refresh(context.Background()); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	fmt.Printf("%-16s %-22s %-10s %-8s %s\n", "USERNAME", "NAME", "ROLE", "STATUS", "LAST LOGIN")
	for _, user := range cli.Container.UserService.Users() {
		if u.Disabled && !user.Disabled {
			continue
		}
		status := "active"
		if user.Disabled {
			status = "disabled"
		}
		fmt.Printf("%-16s %-22s %-10s %-8s %s\n",
			user.Username, user.FullName, user.Role, status,
			user.LastLogin.Format("2006-01-02"))
	}
	return nil
}
