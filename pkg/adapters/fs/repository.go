package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/marsnote/pkg/core"
	"github.com/aretw0/marsnote/pkg/order"
)

// DefaultWatchPattern matches the files the application writes.
const DefaultWatchPattern = "mn-*.json"

// Repository implements core.ProfileRepository on the local filesystem.
type Repository struct {
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
	saves         int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Logger *slog.Logger
	// Serializer encodes the save file. Defaults to indented JSON.
	Serializer Serializer
	// WatchPattern is a doublestar glob matched against file names by Watch.
	WatchPattern string
	// ErrorHandler receives errors raised by background work such as Watch.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Serializer == nil {
		config.Serializer = NewJSONSerializer()
	}
	if config.WatchPattern == "" {
		config.WatchPattern = DefaultWatchPattern
	}
	return &Repository{config: config}
}

var _ core.ProfileRepository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)

// LoadProfiles reads the save file at path. Every failure is returned as a
// *core.LoadError naming the file; a missing file wraps core.ErrNotFound and
// undecodable content wraps core.ErrCorrupt.
func (r *Repository) LoadProfiles(ctx context.Context, path string) (*core.Library, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %w", core.ErrNotFound, err)
		}
		return nil, &core.LoadError{Path: path, Err: permission(err)}
	}

	lib, err := r.config.Serializer.Decode(data)
	if err != nil {
		return nil, &core.LoadError{Path: path, Err: fmt.Errorf("%w: %w", core.ErrCorrupt, err)}
	}

	if verr := lib.Validate(); verr != nil {
		r.config.Logger.Warn("save file contains duplicate names", "path", path, "error", verr)
	}

	r.mu.Lock()
	stamp := time.Now()
	r.lastLoad = &stamp
	r.mu.Unlock()

	r.config.Logger.Debug("profiles loaded", "path", path, "profiles", lib.Len())
	return lib, nil
}

// SaveProfiles writes lib to path in canonical order. lib itself is not
// reordered. A nil library is written as an empty one.
func (r *Repository) SaveProfiles(ctx context.Context, lib *core.Library, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ordered, err := order.Canonical(lib)
	if err != nil {
		return fmt.Errorf("failed to order profiles: %w", err)
	}

	data, err := r.config.Serializer.Encode(ordered)
	if err != nil {
		return fmt.Errorf("failed to serialize profiles: %w", err)
	}

	if err := Write(data, path, false); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	r.mu.Lock()
	stamp := time.Now()
	r.lastSave = &stamp
	r.saves++
	r.mu.Unlock()

	r.config.Logger.Debug("profiles saved", "path", path, "profiles", ordered.Len())
	return nil
}

// FolderContainsSaveFile reports whether dir exists and holds a save file.
func (r *Repository) FolderContainsSaveFile(dir string) bool {
	return DirExists(dir) && FileExists(SaveFilePath(dir))
}

// Export encodes lib in canonical order with the named format.
func (r *Repository) Export(lib *core.Library, format string) ([]byte, error) {
	s, err := SerializerFor(format)
	if err != nil {
		return nil, err
	}
	ordered, err := order.Canonical(lib)
	if err != nil {
		return nil, err
	}
	return s.Encode(ordered)
}

// Import decodes data written by Export.
func (r *Repository) Import(data []byte, format string) (*core.Library, error) {
	s, err := SerializerFor(format)
	if err != nil {
		return nil, err
	}
	lib, err := s.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrCorrupt, err)
	}
	return lib, nil
}
