package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/meridian-tui/meridian/internal/cmd"
	"github.com/meridian-tui/meridian/internal/config"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit  = "unknown"
	Date    = "unknown"
	Version = "dev"
)

// Tagline is the application's tagline used in help text and documentation
const Tagline = "A control panel for your GIS portal"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("meridian %s (commit: %s, built: %s)", Version, Commit, Date)
}

func main() {
	// Load settings from ~/.meridian/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("meridian"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
