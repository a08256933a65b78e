package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/marsnote/pkg/core"
)

var errNoSuchItem = errors.New("no such item")

func findProfile(lib *core.Library, name string) (*core.Profile, error) {
	p := lib.Profile(name)
	if p == nil {
		return nil, fmt.Errorf("profile %q: %w", name, errNoSuchItem)
	}
	return p, nil
}

func findFolder(lib *core.Library, profile, folder string) (*core.Profile, *core.Folder, error) {
	p, err := findProfile(lib, profile)
	if err != nil {
		return nil, nil, err
	}
	f := p.Folder(folder)
	if f == nil {
		return nil, nil, fmt.Errorf("folder %q in profile %q: %w", folder, profile, errNoSuchItem)
	}
	return p, f, nil
}

// findNote returns the first note called name. Note names need not be unique.
func findNote(lib *core.Library, profile, folder, name string) (*core.Folder, *core.Note, error) {
	_, f, err := findFolder(lib, profile, folder)
	if err != nil {
		return nil, nil, err
	}
	for _, n := range f.Notes() {
		if n.Name() == name {
			return f, n, nil
		}
	}
	return nil, nil, fmt.Errorf("note %q in %s/%s: %w", name, profile, folder, errNoSuchItem)
}
