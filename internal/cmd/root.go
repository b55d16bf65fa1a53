package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Play    PlayCmd    `cmd:"" help:"Play a sound file or URI until it ends (default)" default:"withargs"`
	Backend BackendCmd `cmd:"backend" help:"Show the playback backend selected for this host"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires the container
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, config.ExpandPath(c.DebugFile), c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Delegated child processes append to the same log file
	if logFilePath != "" {
		os.Setenv(logging.EnvDebug, "1")
		os.Setenv(logging.EnvDebugFile, logFilePath)
	}

	container, err := NewContainer(config.Load())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}
