package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Format        string     `json:"format"`
	SaveFileName  string     `json:"save_file_name"`
	WatchPattern  string     `json:"watch_pattern"`
	WatcherActive bool       `json:"watcher_active"`
	Saves         int        `json:"saves"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Format:        r.config.Serializer.Format(),
		SaveFileName:  SaveFileName,
		WatchPattern:  r.config.WatchPattern,
		WatcherActive: r.watcherActive,
		Saves:         r.saves,
		LastLoad:      r.lastLoad,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
