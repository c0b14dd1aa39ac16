package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/jobform/internal/core/config"
	"github.com/colonyops/jobform/internal/core/styles"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	config *config.Config
}

// LoadConfig loads and validates the config file once and applies its theme.
// Commands call it on demand so `config validate` can report a broken file
// instead of failing in the root hook.
func (f *Flags) LoadConfig() (*config.Config, error) {
	if f.config != nil {
		return f.config, nil
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// validation ensures the name exists
	palette, _ := styles.GetPalette(cfg.Theme)
	styles.SetTheme(palette)

	f.config = cfg
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jobform", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/jobform/jobform.log
// On Linux: $XDG_STATE_HOME/jobform/jobform.log (defaults to ~/.local/state/jobform/jobform.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "jobform", "jobform.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "jobform", "jobform.log")
	}

	return filepath.Join(home, ".local", "state", "jobform", "jobform.log")
}
