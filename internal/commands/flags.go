package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/core/config"
	"github.com/hay-kot/tidy/internal/tidy"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// ProfilerPort enables the pprof and state endpoint when the TUI runs
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tidy", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tidy")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tidy/tidy.log
// On Linux: $XDG_STATE_HOME/tidy/tidy.log (defaults to ~/.local/state/tidy/tidy.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tidy", "tidy.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tidy", "tidy.log")
	}

	return filepath.Join(home, ".local", "state", "tidy", "tidy.log")
}

// GlobalFlags returns the root command flags bound to f.
func GlobalFlags(f *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TIDY_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/tidy.log)",
			Sources:     cli.EnvVars("TIDY_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("TIDY_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("TIDY_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &f.DataDir,
		},
	}
}

// Register adds every subcommand to root.
func Register(root *cli.Command, f *Flags, app *tidy.App) *cli.Command {
	root = NewListCmd(f, app).Register(root)
	root = NewReplayCmd(f).Register(root)
	root = NewConfigValidateCmd(f).Register(root)
	root = NewDocCmd(f).Register(root)
	root = NewInitCmd(f).Register(root)
	return root
}

// RootDescription is the long help for the root command.
const RootDescription = `tidy keeps a to-do list in a single state store. Every change is an action
the store reduces into a new state, and the views redraw from that state.

Run 'tidy' with no arguments to open the interactive list.
Run 'tidy replay' to script actions and check the result.`
