// Package relocate moves the save directory to a new location.
//
// A Flow starts Idle. Choose records a candidate directory; when the
// candidate already holds a save file the flow waits for Resolve, otherwise
// it applies an overwrite straight away. Applying ends in RestartPending: the
// new location is stored in the settings and a restart is scheduled, because
// the live library is never re-pointed at another file while running.
package relocate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/marsnote/pkg/core"
)

// Phase is a state of the relocation flow.
type Phase int

const (
	Idle Phase = iota
	TargetChosen
	ConflictDetected
	AwaitingUserChoice
	Applying
	RestartPending
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case TargetChosen:
		return "target-chosen"
	case ConflictDetected:
		return "conflict-detected"
	case AwaitingUserChoice:
		return "awaiting-user-choice"
	case Applying:
		return "applying"
	case RestartPending:
		return "restart-pending"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Choice answers a conflict.
type Choice int

const (
	// Overwrite replaces the save file found at the target with the current data.
	Overwrite Choice = iota
	// Load keeps the target's save file. The current data is first written to
	// the old location so nothing is lost.
	Load
	// Cancel abandons the move.
	Cancel
)

func (c Choice) String() string {
	switch c {
	case Overwrite:
		return "overwrite"
	case Load:
		return "load"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

// ParseChoice maps a user answer to a Choice.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "overwrite", "o":
		return Overwrite, nil
	case "load", "l":
		return Load, nil
	case "cancel", "c", "":
		return Cancel, nil
	}
	return Cancel, fmt.Errorf("unknown choice %q", s)
}

// Saver writes the current live library to a save file path.
type Saver interface {
	SaveTo(ctx context.Context, path string) error
}

// Deps are the collaborators of a Flow.
type Deps struct {
	Saver     Saver
	Repo      core.ProfileRepository
	Settings  core.SettingsStore
	Restarter core.Restarter
	// DirExists defaults to a stat of the path.
	DirExists func(dir string) bool
	// Relocated, when set, is called with the new directory once it has been
	// stored in the settings file and before the restart is scheduled.
	Relocated func(dir string)
	Logger    *slog.Logger
}

// Flow drives one relocation. It is not safe for concurrent use.
type Flow struct {
	deps     Deps
	settings *core.Settings
	current  string
	fileName string

	phase  Phase
	target string
}

// New starts a flow for a save file named fileName that currently lives in
// settings.SaveFileLocation(). settings is copied; the caller's value is not
// changed.
func New(deps Deps, settings *core.Settings, fileName string) *Flow {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.DirExists == nil {
		deps.DirExists = dirExists
	}
	return &Flow{
		deps:     deps,
		settings: settings.Clone(),
		current:  settings.SaveFileLocation(),
		fileName: fileName,
	}
}

func (f *Flow) Phase() Phase    { return f.phase }
func (f *Flow) Target() string  { return f.target }
func (f *Flow) Current() string { return f.current }

// Settings returns the settings as they were last stored by the flow.
func (f *Flow) Settings() *core.Settings { return f.settings.Clone() }

// Choose records dir as the new save directory. A directory that does not
// exist, or is already the current one, leaves the flow Idle and changes
// nothing. Without a conflict the overwrite is applied at once.
func (f *Flow) Choose(ctx context.Context, dir string) error {
	if f.phase != Idle {
		return fmt.Errorf("choose in phase %s: %w", f.phase, core.ErrInvalidTransition)
	}
	if dir == "" || !f.deps.DirExists(dir) || samePath(dir, f.current) {
		f.deps.Logger.Debug("relocation target ignored", "dir", dir)
		return nil
	}

	f.target = dir
	f.enter(TargetChosen)

	if !f.deps.Repo.FolderContainsSaveFile(dir) {
		return f.apply(ctx, Overwrite)
	}

	f.enter(ConflictDetected)
	f.enter(AwaitingUserChoice)
	return nil
}

// Resolve answers the conflict found by Choose.
func (f *Flow) Resolve(ctx context.Context, choice Choice) error {
	if f.phase != AwaitingUserChoice {
		return fmt.Errorf("resolve in phase %s: %w", f.phase, core.ErrInvalidTransition)
	}
	switch choice {
	case Overwrite, Load:
		return f.apply(ctx, choice)
	case Cancel:
		f.reset()
		return nil
	default:
		return fmt.Errorf("resolve: unknown choice %d: %w", int(choice), core.ErrInvalidTransition)
	}
}

func (f *Flow) apply(ctx context.Context, choice Choice) error {
	f.enter(Applying)

	dest := filepath.Join(f.target, f.fileName)
	if choice == Load {
		dest = filepath.Join(f.current, f.fileName)
	}
	if err := f.deps.Saver.SaveTo(ctx, dest); err != nil {
		f.reset()
		return fmt.Errorf("relocate (%s): %w", choice, err)
	}

	next := f.settings.Clone()
	next.SetSaveFileLocation(f.target)
	if err := f.deps.Settings.Save(ctx, next); err != nil {
		f.reset()
		return fmt.Errorf("relocate: failed to store new location: %w", err)
	}
	f.settings = next
	if f.deps.Relocated != nil {
		f.deps.Relocated(f.target)
	}

	f.enter(RestartPending)
	f.deps.Logger.Info("save directory moved", "dir", f.target, "mode", choice.String())

	if f.deps.Restarter != nil {
		if err := f.deps.Restarter.ScheduleRestart(ctx); err != nil {
			return fmt.Errorf("relocate: failed to schedule restart: %w", err)
		}
	}
	return nil
}

func (f *Flow) enter(p Phase) {
	f.deps.Logger.Debug("relocation phase", "phase", p.String())
	f.phase = p
}

func (f *Flow) reset() {
	f.target = ""
	f.enter(Idle)
}

func samePath(a, b string) bool {
	ca, errA := filepath.Abs(a)
	cb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ca == cb
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
