package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/meridian-tui/meridian/internal/config"
	"github.com/meridian-tui/meridian/internal/logging"
	"github.com/meridian-tui/meridian/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run   RunCmd   `cmd:"" help:"Start the meridian TUI (default)" default:"1"`
	Items ItemsCmd `cmd:"" help:"Inspect portal items"`
	Users UsersCmd `cmd:"" help:"Inspect portal users"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct before parsing
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging and the dependency container after CLI
// parsing. Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("MERIDIAN_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("MERIDIAN_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// Key overrides are a configuration defect when malformed; fail
		// at startup, not mid-session
		if err := c.settings.Keys.Validate(ui.ValidKeyNames()); err != nil {
			return err
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return err
	}
	c.Container = container
	return nil
}

// Close releases container resources
func (c *CLI) Close() {
	if c.Container != nil {
		c.Container.Close()
	}
}

// Settings returns the loaded settings
func (c *CLI) Settings() *config.Settings {
	return c.settings
}
