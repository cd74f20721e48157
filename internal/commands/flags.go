package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/taskhub/internal/core/config"
	"github.com/colonyops/taskhub/internal/taskapi"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	APIURL     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client is the task API client built from Config
	Client *taskapi.Client
}

// NewClient builds the API client from the loaded configuration. A non-empty
// APIURL overrides the configured base URL.
func (f *Flags) NewClient() (*taskapi.Client, error) {
	base := f.Config.API.URL
	if f.APIURL != "" {
		base = f.APIURL
	}
	c, err := taskapi.New(base, taskapi.WithHeaders(f.Config.API.Headers))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return c, nil
}

// APIClient returns the client built in the Before hook, building one when
// it is missing.
func (f *Flags) APIClient() (*taskapi.Client, error) {
	if f.Client != nil {
		return f.Client, nil
	}
	return f.NewClient()
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskhub", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/taskhub/taskhub.log
// On Linux: $XDG_STATE_HOME/taskhub/taskhub.log (defaults to ~/.local/state/taskhub/taskhub.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "taskhub", "taskhub.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "taskhub", "taskhub.log")
	}

	return filepath.Join(home, ".local", "state", "taskhub", "taskhub.log")
}
