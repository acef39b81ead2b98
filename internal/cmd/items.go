package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridian-tui/meridian/internal/logging"
)

// ItemsCmd groups item subcommands
type ItemsCmd struct {
	List ItemsListCmd `cmd:"" help:"List portal items" default:"1"`
}

// ItemsListCmd prints the portal items without starting the TUI
type ItemsListCmd struct {
	Type string `help:"Filter by item type (map, layer, app, dataset)" short:"t"`
}

// Run executes the items list command
func (i *ItemsListCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing items list command", "type", i.Type)

	if err := cli.Container.ItemService.Refresh(context.Background()); err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	items := cli.Container.ItemService.Items()

	fmt.Printf("%-10s %-28s %-8s %-12s %-8s %s\n", "ID", "TITLE", "TYPE", "OWNER", "SHARING", "MODIFIED")
	for _, item := range items {
		if i.Type != "" && !strings.EqualFold(string(item.Type), i.Type) {
			continue
		}
		fmt.Printf("%-10s %-28s %-8s %-12s %-8s %s\n",
			item.ID, item.Title, item.Type, item.Owner, item.Sharing,
			item.Modified.Format("2006-01-02"))
	}
	return nil
}
