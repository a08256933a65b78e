package marsnote

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/marsnote/internal/platform"
	"github.com/aretw0/marsnote/pkg/core"
)

// --- Types ---

// Session is a running MarsNote library bound to its save directory.
type Session = platform.Session

// SessionState is the observability snapshot returned by Session.State.
type SessionState = platform.SessionState

// Env is the process configuration read from the environment.
type Env = platform.Env

// --- Configuration ---

// Option defines a functional option for configuring a session.
type Option = platform.Option

// WithAppDir sets the application-data directory.
func WithAppDir(dir string) Option {
	return platform.WithAppDir(dir)
}

// WithAutostartDir sets where the auto-start entry is written.
func WithAutostartDir(dir string) Option {
	return platform.WithAutostartDir(dir)
}

// WithEnv supplies an already parsed environment instead of reading it.
func WithEnv(e Env) Option {
	return platform.WithEnv(e)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.ProfileRepository) Option {
	return platform.WithRepository(repo)
}

// WithRestarter sets what happens once a relocation asks for a restart.
func WithRestarter(r core.Restarter) Option {
	return platform.WithRestarter(r)
}

// WithStartupRegistrar replaces the auto-start registrar.
func WithStartupRegistrar(r core.StartupRegistrar) Option {
	return platform.WithStartupRegistrar(r)
}

// WithAutoSaveUnit sets the length of one auto-save interval step.
func WithAutoSaveUnit(unit time.Duration) Option {
	return platform.WithAutoSaveUnit(unit)
}

// WithForceTemp forces the application-data directory into the system temp dir.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// --- Factory ---

// Open loads the library (or seeds a new one) and starts auto-save.
func Open(ctx context.Context, opts ...Option) (*Session, error) {
	return platform.Open(ctx, opts...)
}

// LoadEnv reads MARSNOTE_* variables from the environment.
func LoadEnv() (Env, error) {
	return platform.LoadEnv()
}

// --- Safety & Utils ---

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// ResolveAppDir determines the actual application-data directory based on safety rules.
func ResolveAppDir(dir string, forceTemp bool) string {
	return platform.ResolveAppDir(dir, forceTemp)
}

// ParseLevel maps a MARSNOTE_LOG_LEVEL value to a slog level.
func ParseLevel(name string) slog.Level {
	return platform.ParseLevel(name)
}
