package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/autosave"
	"github.com/aretw0/marsnote/pkg/core"
	"github.com/aretw0/marsnote/pkg/relocate"
)

// Session owns the live library for one run of the application. Every access
// to the library goes through the session's lock, and every save goes through
// the auto-save worker, so there is a single writer of the save file.
type Session struct {
	mu sync.Mutex

	appDir    string
	saveDir   string
	settings  *core.Settings
	lib       *core.Library
	lastState core.State
	firstRun  bool
	closed    bool

	repo          core.ProfileRepository
	settingsStore core.SettingsStore
	stateStore    core.StateStore
	registrar     core.StartupRegistrar
	restarter     core.Restarter
	scheduler     *autosave.Scheduler
	logger        *slog.Logger
	cancel        context.CancelFunc
}

// AppDir is the application-data directory.
func (s *Session) AppDir() string { return s.appDir }

// SaveDir is the directory holding the save file for this run.
func (s *Session) SaveDir() string { return s.saveDir }

// SavePath is the full path of the save file.
func (s *Session) SavePath() string { return filepath.Join(s.saveDir, fs.SaveFileName) }

// FirstRun reports whether the library was seeded by Open.
func (s *Session) FirstRun() bool { return s.firstRun }

// Repository returns the storage adapter.
func (s *Session) Repository() core.ProfileRepository { return s.repo }

// Scheduler returns the auto-save worker.
func (s *Session) Scheduler() *autosave.Scheduler { return s.scheduler }

// View runs fn with the live library while holding the session lock. fn must
// not keep references to the library and must not call other Session methods.
func (s *Session) View(fn func(lib *core.Library) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.lib)
}

// Update runs fn with the live library and saves when it succeeds. When fn
// fails nothing is saved; fn is responsible for leaving the library as it was.
// As with View, fn must not call other Session methods.
func (s *Session) Update(ctx context.Context, fn func(lib *core.Library) error) error {
	s.mu.Lock()
	err := fn(s.lib)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Save(ctx)
}

// Save writes the library to the save file through the auto-save worker.
func (s *Session) Save(ctx context.Context) error {
	return s.scheduler.SaveNow(ctx)
}

// persist is the worker's save function.
func (s *Session) persist(ctx context.Context) error {
	return s.SaveTo(ctx, s.SavePath())
}

// SaveTo writes the library to path. Relocation uses it to write to the new
// or the old directory.
func (s *Session) SaveTo(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveProfiles(ctx, s.lib, path)
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() *core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// UpdateSettings applies fn to a copy of the settings and stores the result.
// The save location only changes through Relocate and the startup flag only
// through SetStartOnStartup; edits to either are discarded. A new auto-save
// interval takes effect immediately.
func (s *Session) UpdateSettings(ctx context.Context, fn func(*core.Settings)) error {
	s.mu.Lock()
	next := s.settings.Clone()
	fn(next)
	next.SetSaveFileLocation(s.settings.SaveFileLocation())
	next.SetStartOnSystemStartup(s.settings.StartOnSystemStartup())
	s.mu.Unlock()

	if err := s.settingsStore.Save(ctx, next); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	s.scheduler.SetInterval(next.AutoSave())
	return nil
}

// SetStartOnStartup registers or unregisters the application with the OS
// auto-start mechanism. On failure the cached flag keeps its previous value
// and the error is returned.
func (s *Session) SetStartOnStartup(enabled bool) error {
	var err error
	if enabled {
		err = s.registrar.Enable()
	} else {
		err = s.registrar.Disable()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Warn("auto-start change rolled back", "enabled", enabled, "error", err)
		return err
	}
	s.settings.SetStartOnSystemStartup(enabled)
	return nil
}

// LastState returns the selection recorded when the previous session ended.
func (s *Session) LastState() core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastState
}

// Select records the current selection. It is written on Close or SaveState.
func (s *Session) Select(profile, folder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastState = core.NewState(profile, folder)
}

// SaveState writes the current selection to the state file.
func (s *Session) SaveState(ctx context.Context) error {
	return s.stateStore.Save(ctx, s.LastState())
}

// Relocate starts moving the save directory. The returned flow writes through
// this session. Once the flow has stored a new location, the session's
// settings carry it, so later settings changes keep it; the running session
// still saves to the old directory until the restart.
func (s *Session) Relocate() *relocate.Flow {
	return relocate.New(relocate.Deps{
		Saver:     s,
		Repo:      s.repo,
		Settings:  s.settingsStore,
		Restarter: s.restarter,
		Relocated: s.relocated,
		Logger:    s.logger,
	}, s.Settings(), fs.SaveFileName)
}

func (s *Session) relocated(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SetSaveFileLocation(dir)
}

// Close stores the selection, saves the library and stops the worker.
// Calling Close more than once is a no-op.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	var errs []error
	if err := s.SaveState(ctx); err != nil {
		errs = append(errs, fmt.Errorf("save state: %w", err))
	}
	if err := s.Save(ctx); err != nil {
		errs = append(errs, fmt.Errorf("save profiles: %w", err))
	}

	s.cancel()
	select {
	case <-s.scheduler.Done():
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}

// SessionState exposes internal state for observability.
type SessionState struct {
	AppDir    string `json:"app_dir"`
	SavePath  string `json:"save_path"`
	FirstRun  bool   `json:"first_run"`
	Profiles  int    `json:"profiles"`
	Folders   int    `json:"folders"`
	Notes     int    `json:"notes"`
	AutoSave  int    `json:"auto_save_minutes"`
	Accent    string `json:"accent"`
	Autostart bool   `json:"autostart"`
	Scheduler any    `json:"scheduler"`
	Repo      any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.Lock()
	st := SessionState{
		AppDir:    s.appDir,
		SavePath:  s.SavePath(),
		FirstRun:  s.firstRun,
		Profiles:  s.lib.Len(),
		AutoSave:  s.settings.AutoSave(),
		Accent:    s.settings.AccentColour(),
		Autostart: s.settings.StartOnSystemStartup(),
	}
	for _, p := range s.lib.Profiles() {
		st.Folders += p.Len()
		for _, f := range p.Folders() {
			st.Notes += f.Len()
		}
	}
	s.mu.Unlock()

	st.Scheduler = s.scheduler.State()
	if intro, ok := s.repo.(introspection.Introspectable); ok {
		st.Repo = intro.State()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
var _ relocate.Saver = (*Session)(nil)
