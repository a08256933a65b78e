// Package order computes the canonical order in which the library is written
// to the save file.
//
// Profiles are sorted by name, folders by name and notes by modification time,
// newest first. Folders and notes then go through a pin pass that moves pinned
// items to the front. The live library is never reordered: Canonical works on a
// clone.
package order

import (
	"slices"
	"strings"

	"github.com/aretw0/marsnote/pkg/core"
)

// PinFirst moves every pinned item to the front of items. Pinned items keep
// their relative order, and so do the unpinned ones.
func PinFirst[T core.Pinnable](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		switch {
		case a.Pinned() == b.Pinned():
			return 0
		case a.Pinned():
			return -1
		default:
			return 1
		}
	})
}

// Profiles sorts by name using ordinal, case-sensitive comparison.
func Profiles(profiles []*core.Profile) {
	slices.SortStableFunc(profiles, func(a, b *core.Profile) int {
		return strings.Compare(a.Name(), b.Name())
	})
}

// Folders sorts by name, then pins.
func Folders(folders []*core.Folder) {
	slices.SortStableFunc(folders, func(a, b *core.Folder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	PinFirst(folders)
}

// Notes sorts by modification time, newest first, then pins.
func Notes(notes []*core.Note) {
	slices.SortStableFunc(notes, func(a, b *core.Note) int {
		return b.LastModified().Compare(a.LastModified())
	})
	PinFirst(notes)
}

// Apply reorders lib in place at every level.
func Apply(lib *core.Library) {
	profiles := lib.Profiles()
	Profiles(profiles)
	for _, p := range profiles {
		folders := p.Folders()
		Folders(folders)
		for _, f := range folders {
			notes := f.Notes()
			Notes(notes)
			f.SetNotes(notes)
		}
		p.SetFolders(folders)
	}
	lib.SetProfiles(profiles)
}

// Canonical returns an ordered clone of lib, leaving lib untouched.
// A nil library yields an empty one.
func Canonical(lib *core.Library) (*core.Library, error) {
	if lib == nil {
		return core.NewLibrary(nil), nil
	}
	clone, err := lib.Clone()
	if err != nil {
		return nil, err
	}
	Apply(clone)
	return clone, nil
}
