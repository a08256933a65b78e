package core

import (
	"fmt"
	"slices"
	"strings"
)

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s: %w", kind, ErrInvalidName)
	}
	return nil
}

// Folder is a named container of notes inside a Profile.
// The order of Notes is the live display order.
type Folder struct {
	notifier

	name   string
	notes  []*Note
	pinned bool
}

// NewFolder builds a folder from explicit field values. It fails with
// ErrInvalidName when name is empty or whitespace.
func NewFolder(name string, notes []*Note, pinned bool) (*Folder, error) {
	if err := validateName("folder", name); err != nil {
		return nil, err
	}
	f := &Folder{name: name, pinned: pinned}
	f.SetNotes(notes)
	return f, nil
}

// EmptyFolder returns an unpinned folder with no notes.
func EmptyFolder(name string) (*Folder, error) {
	return NewFolder(name, nil, false)
}

func (f *Folder) Name() string { return f.name }

// SetName renames the folder. Sibling uniqueness is checked by Profile.RenameFolder.
func (f *Folder) SetName(name string) error {
	if err := validateName("folder", name); err != nil {
		return err
	}
	f.name = name
	f.notify(FieldName)
	return nil
}

func (f *Folder) Pinned() bool { return f.pinned }

func (f *Folder) SetPinned(pinned bool) {
	f.pinned = pinned
	f.notify(FieldPinned)
}

// Notes returns the notes in display order. The slice is a copy; the notes are not.
func (f *Folder) Notes() []*Note {
	return slices.Clone(f.notes)
}

func (f *Folder) Len() int { return len(f.notes) }

// SetNotes replaces the whole collection. Nil entries are dropped.
func (f *Folder) SetNotes(notes []*Note) {
	f.notes = make([]*Note, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			f.notes = append(f.notes, n)
		}
	}
	f.notify(FieldNotes)
}

// AddNote appends n to the end of the folder.
func (f *Folder) AddNote(n *Note) {
	f.InsertNote(len(f.notes), n)
}

// InsertNote inserts n at index i, clamped to the bounds of the collection.
// New notes are inserted at 0 so they show first.
func (f *Folder) InsertNote(i int, n *Note) {
	if n == nil {
		return
	}
	i = max(0, min(i, len(f.notes)))
	f.notes = slices.Insert(f.notes, i, n)
	f.notify(FieldNotes)
}

// RemoveNote deletes n from the folder and reports whether it was present.
func (f *Folder) RemoveNote(n *Note) bool {
	i := f.IndexOf(n)
	if i < 0 {
		return false
	}
	f.notes = slices.Delete(f.notes, i, i+1)
	f.notify(FieldNotes)
	return true
}

// IndexOf returns the display position of n, or -1.
func (f *Folder) IndexOf(n *Note) int {
	return slices.Index(f.notes, n)
}

func (f *Folder) Contains(n *Note) bool {
	return f.IndexOf(n) >= 0
}
