package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/marsnote/pkg/core"
)

// AutostartEntryName is the file created in the OS auto-start directory.
const AutostartEntryName = "marsnote.desktop"

// AutostartRegistrar registers the application with an XDG style auto-start
// directory. Enabling also creates the startup marker file in the
// application-data directory, which the entry points at.
type AutostartRegistrar struct {
	markerPath string
	entryPath  string
	executable string
	logger     *slog.Logger
}

// NewAutostartRegistrar creates a registrar. executable is the command the
// entry launches; when empty, the running binary is used.
func NewAutostartRegistrar(appDir, autostartDir, executable string, logger *slog.Logger) *AutostartRegistrar {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if executable == "" {
		if exe, err := os.Executable(); err == nil {
			executable = exe
		} else {
			executable = "marsnote"
		}
	}
	return &AutostartRegistrar{
		markerPath: filepath.Join(appDir, StartupFileName),
		entryPath:  filepath.Join(autostartDir, AutostartEntryName),
		executable: executable,
		logger:     logger,
	}
}

var _ core.StartupRegistrar = (*AutostartRegistrar)(nil)

func (a *AutostartRegistrar) EntryPath() string  { return a.entryPath }
func (a *AutostartRegistrar) MarkerPath() string { return a.markerPath }

// Enabled reports whether the auto-start entry exists. An entry that cannot be
// inspected counts as disabled.
func (a *AutostartRegistrar) Enabled() bool {
	_, err := os.Stat(a.entryPath)
	if err == nil {
		return true
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		a.logger.Warn("cannot read auto-start entry", "path", a.entryPath, "error", err)
	}
	return false
}

// Enable creates the marker file and the auto-start entry. Access denial is
// reported with core.ErrPermission.
func (a *AutostartRegistrar) Enable() error {
	if !FileExists(a.markerPath) {
		if err := CreateFileAndDirectory(a.markerPath); err != nil {
			return fmt.Errorf("failed to create startup marker: %w", err)
		}
	}

	entry := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=MarsNote\nExec=%q %q\nX-GNOME-Autostart-enabled=true\n", a.executable, a.markerPath)
	if err := Write([]byte(entry), a.entryPath, false); err != nil {
		return fmt.Errorf("failed to register auto-start: %w", err)
	}
	return nil
}

// Disable removes the auto-start entry if it exists. The marker is kept.
func (a *AutostartRegistrar) Disable() error {
	err := os.Remove(a.entryPath)
	if err == nil || errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to unregister auto-start: %w", permission(err))
}
