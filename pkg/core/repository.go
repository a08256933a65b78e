package core

import "context"

// ProfileRepository defines the contract for storing and retrieving the
// library. Adhering to this interface keeps the core independent of the
// underlying storage mechanism.
type ProfileRepository interface {
	// LoadProfiles reads the save file at path. A file with no data yields an
	// empty library. Any other failure is returned and must be treated as fatal.
	LoadProfiles(ctx context.Context, path string) (*Library, error)

	// SaveProfiles writes lib to path in canonical order, creating parent
	// directories as needed. A nil library is written as an empty one.
	// lib itself is never reordered.
	SaveProfiles(ctx context.Context, lib *Library, path string) error

	// FolderContainsSaveFile reports whether dir already holds a save file.
	FolderContainsSaveFile(dir string) bool
}

// Watchable is implemented by repositories that can report external changes
// to the files they manage.
type Watchable interface {
	Watch(ctx context.Context, dir string, events chan<- Event) error
}

// SettingsStore persists Settings. Load never fails: a missing or corrupt file
// yields DefaultSettings.
type SettingsStore interface {
	Load(ctx context.Context) *Settings
	Save(ctx context.Context, s *Settings) error
}

// StateStore persists the last-session State with the same best-effort
// contract as SettingsStore.
type StateStore interface {
	Load(ctx context.Context) State
	Save(ctx context.Context, s State) error
}

// StartupRegistrar manages the OS auto-start registration. Enabled reports
// false when the underlying mechanism cannot be read.
type StartupRegistrar interface {
	Enabled() bool
	Enable() error
	Disable() error
}

// Restarter schedules an application restart after the save directory moved.
type Restarter interface {
	ScheduleRestart(ctx context.Context) error
}

// RestarterFunc adapts a function to Restarter.
type RestarterFunc func(ctx context.Context) error

func (f RestarterFunc) ScheduleRestart(ctx context.Context) error { return f(ctx) }
