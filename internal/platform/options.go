package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/marsnote/pkg/core"
)

// options holds the internal configuration for a session.
type options struct {
	appDir       string
	autostartDir string
	logger       *slog.Logger
	repository   core.ProfileRepository
	restarter    core.Restarter
	registrar    core.StartupRegistrar
	autoSaveUnit time.Duration
	forceTemp    bool
	env          *Env
}

// Option defines a functional option for configuring a session.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		autoSaveUnit: time.Minute,
	}
}

// WithAppDir sets the application-data directory, overriding MARSNOTE_HOME.
func WithAppDir(dir string) Option {
	return func(o *options) {
		o.appDir = dir
	}
}

// WithAutostartDir sets the directory for the auto-start entry, overriding
// MARSNOTE_AUTOSTART_DIR.
func WithAutostartDir(dir string) Option {
	return func(o *options) {
		o.autostartDir = dir
	}
}

// WithEnv supplies an already parsed environment.
func WithEnv(e Env) Option {
	return func(o *options) {
		o.env = &e
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a fake).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.ProfileRepository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithRestarter sets what happens once a relocation asks for a restart.
// By default the request is only logged.
func WithRestarter(r core.Restarter) Option {
	return func(o *options) {
		o.restarter = r
	}
}

// WithStartupRegistrar replaces the auto-start registrar.
func WithStartupRegistrar(r core.StartupRegistrar) Option {
	return func(o *options) {
		o.registrar = r
	}
}

// WithAutoSaveUnit sets the length of one auto-save interval step.
// Defaults to a minute.
func WithAutoSaveUnit(unit time.Duration) Option {
	return func(o *options) {
		if unit > 0 {
			o.autoSaveUnit = unit
		}
	}
}

// WithForceTemp forces the application-data directory into the system temp
// dir (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}
