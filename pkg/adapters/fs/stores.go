package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/marsnote/pkg/core"
)

// SettingsStore keeps Settings in the settings file of the application-data
// directory. A missing or unreadable file never blocks startup: Load falls
// back to defaults and logs why.
type SettingsStore struct {
	path            string
	defaultLocation string
	registrar       core.StartupRegistrar
	logger          *slog.Logger
}

// NewSettingsStore stores settings under appDir. The application-data
// directory is also the default save location. registrar may be nil.
func NewSettingsStore(appDir string, registrar core.StartupRegistrar, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SettingsStore{
		path:            filepath.Join(appDir, SettingsFileName),
		defaultLocation: appDir,
		registrar:       registrar,
		logger:          logger,
	}
}

var _ core.SettingsStore = (*SettingsStore)(nil)

func (s *SettingsStore) Path() string { return s.path }

// Load reads the settings file. The startup flag is taken from the registrar.
func (s *SettingsStore) Load(ctx context.Context) *core.Settings {
	settings, err := s.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("settings unreadable, using defaults", "path", s.path, "error", err)
		}
		settings = core.DefaultSettings(s.defaultLocation)
	}
	if s.registrar != nil {
		settings.SetStartOnSystemStartup(s.registrar.Enabled())
	}
	return settings
}

func (s *SettingsStore) read() (*core.Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return core.ParseSettings(data, s.defaultLocation)
}

// Save writes settings. The startup flag is not part of the file.
func (s *SettingsStore) Save(ctx context.Context, settings *core.Settings) error {
	if settings == nil {
		return nil
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := Write(data, s.path, false); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// StateStore keeps the last-session State with the same best-effort policy
// as SettingsStore.
type StateStore struct {
	path   string
	logger *slog.Logger
}

func NewStateStore(appDir string, logger *slog.Logger) *StateStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StateStore{path: filepath.Join(appDir, StateFileName), logger: logger}
}

var _ core.StateStore = (*StateStore)(nil)

func (s *StateStore) Path() string { return s.path }

func (s *StateStore) Load(ctx context.Context) core.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("state unreadable, starting without selection", "path", s.path, "error", err)
		}
		return core.State{}
	}
	st, err := core.ParseState(data)
	if err != nil {
		s.logger.Warn("state corrupt, starting without selection", "path", s.path, "error", err)
		return core.State{}
	}
	return st
}

func (s *StateStore) Save(ctx context.Context, st core.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := Write(data, s.path, false); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
