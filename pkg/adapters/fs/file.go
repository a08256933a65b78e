package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/marsnote/pkg/core"
)

// File names used by the application. Only the save file can be relocated;
// the others always live in the application-data directory.
const (
	SaveFileName     = "mn-save.json"
	SettingsFileName = "mn-settings.json"
	StateFileName    = "mn-state.json"
	StartupFileName  = "startup.acwmn"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// SaveFilePath joins a save directory with the save file name.
func SaveFilePath(dir string) string {
	return filepath.Join(dir, SaveFileName)
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateFileAndDirectory creates an empty file at path together with any
// missing parent directories. An existing file is left as is.
func CreateFileAndDirectory(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, permission(err))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, permission(err))
	}
	return f.Close()
}

// Write stores contents at path, creating the file and its directories when
// missing. With appendMode the contents are added to the end of the file;
// otherwise the file is replaced atomically, and a failed replace leaves no
// file behind where there was none. Nil contents are a no-op.
func Write(contents []byte, path string, appendMode bool) error {
	if contents == nil {
		return nil
	}

	if !appendMode {
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, permission(err))
		}
		return permission(replaceFile(path, contents, filePerm))
	}

	if !FileExists(path) {
		if err := CreateFileAndDirectory(path); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, permission(err))
	}
	if _, err := f.Write(contents); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}

// permission tags access-denied errors with core.ErrPermission so callers can
// tell them apart without inspecting the OS error.
func permission(err error) error {
	if err != nil && errors.Is(err, iofs.ErrPermission) && !errors.Is(err, core.ErrPermission) {
		return fmt.Errorf("%w: %w", core.ErrPermission, err)
	}
	return err
}
