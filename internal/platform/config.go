package platform

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env is the process configuration read from the environment.
type Env struct {
	// Home is the application-data directory. It holds the settings, state
	// and startup marker files and is the default save directory.
	Home string `env:"MARSNOTE_HOME"`
	// AutostartDir is where the auto-start entry is written.
	AutostartDir string `env:"MARSNOTE_AUTOSTART_DIR"`
	LogLevel     string `env:"MARSNOTE_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the environment and fills platform defaults for unset paths.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	if cfg.Home == "" {
		cfg.Home = DefaultHome(base)
	}
	if cfg.AutostartDir == "" {
		cfg.AutostartDir = filepath.Join(base, "autostart")
	}
	return cfg, nil
}

// DefaultHome returns the application-data directory under base.
func DefaultHome(base string) string {
	return filepath.Join(base, "ACW Technologies", "MarsNote")
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
