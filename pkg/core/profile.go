package core

import (
	"fmt"
	"slices"
)

// Profile is the top-level namespace. Folder names are unique within a profile.
type Profile struct {
	notifier

	name    string
	folders []*Folder
}

// NewProfile builds a profile from explicit field values. It fails with
// ErrInvalidName when name is empty or whitespace.
func NewProfile(name string, folders []*Folder) (*Profile, error) {
	if err := validateName("profile", name); err != nil {
		return nil, err
	}
	p := &Profile{name: name}
	p.SetFolders(folders)
	return p, nil
}

// EmptyProfile returns a profile with no folders.
func EmptyProfile(name string) (*Profile, error) {
	return NewProfile(name, nil)
}

func (p *Profile) Name() string { return p.name }

// SetName renames the profile. Uniqueness is checked by Library.RenameProfile.
func (p *Profile) SetName(name string) error {
	if err := validateName("profile", name); err != nil {
		return err
	}
	p.name = name
	p.notify(FieldName)
	return nil
}

// Folders returns the folders in display order. The slice is a copy.
func (p *Profile) Folders() []*Folder {
	return slices.Clone(p.folders)
}

func (p *Profile) Len() int { return len(p.folders) }

// SetFolders replaces the whole collection without checking names.
// Nil entries are dropped.
func (p *Profile) SetFolders(folders []*Folder) {
	p.folders = make([]*Folder, 0, len(folders))
	for _, f := range folders {
		if f != nil {
			p.folders = append(p.folders, f)
		}
	}
	p.notify(FieldFolders)
}

// Folder returns the folder called name, or nil.
func (p *Profile) Folder(name string) *Folder {
	for _, f := range p.folders {
		if f.name == name {
			return f
		}
	}
	return nil
}

// HasFolder reports whether a folder called name exists in this profile.
// Callers use it to reject duplicates before persisting.
func (p *Profile) HasFolder(name string) bool {
	return p.Folder(name) != nil
}

// AddFolder appends f, rejecting a name already used by a sibling.
func (p *Profile) AddFolder(f *Folder) error {
	return p.InsertFolder(len(p.folders), f)
}

// InsertFolder inserts f at index i, rejecting a name already used by a sibling.
func (p *Profile) InsertFolder(i int, f *Folder) error {
	if f == nil {
		return fmt.Errorf("folder: %w", ErrInvalidName)
	}
	if p.HasFolder(f.name) {
		return fmt.Errorf("folder %q in profile %q: %w", f.name, p.name, ErrDuplicateName)
	}
	i = max(0, min(i, len(p.folders)))
	p.folders = slices.Insert(p.folders, i, f)
	p.notify(FieldFolders)
	return nil
}

// CreateFolder adds a new empty folder called name.
func (p *Profile) CreateFolder(name string) (*Folder, error) {
	f, err := EmptyFolder(name)
	if err != nil {
		return nil, err
	}
	if err := p.AddFolder(f); err != nil {
		return nil, err
	}
	return f, nil
}

// RenameFolder renames f, which must belong to p. Renaming a folder to its
// current name is a no-op.
func (p *Profile) RenameFolder(f *Folder, name string) error {
	if !p.Contains(f) {
		return fmt.Errorf("rename folder in profile %q: %w", p.name, ErrNotMember)
	}
	if err := validateName("folder", name); err != nil {
		return err
	}
	if f.name == name {
		return nil
	}
	if p.HasFolder(name) {
		return fmt.Errorf("folder %q in profile %q: %w", name, p.name, ErrDuplicateName)
	}
	return f.SetName(name)
}

// RemoveFolder deletes f and, with it, all of its notes.
func (p *Profile) RemoveFolder(f *Folder) bool {
	i := slices.Index(p.folders, f)
	if i < 0 {
		return false
	}
	p.folders = slices.Delete(p.folders, i, i+1)
	p.notify(FieldFolders)
	return true
}

func (p *Profile) Contains(f *Folder) bool {
	return f != nil && slices.Contains(p.folders, f)
}
