package core

import (
	"errors"
	"fmt"
	"slices"
)

// Library is the ordered, top-level collection of profiles: the content of the
// save file. Profile names are unique within a library.
type Library struct {
	notifier

	profiles []*Profile
}

// NewLibrary wraps profiles without checking names; see Validate.
func NewLibrary(profiles []*Profile) *Library {
	l := &Library{}
	l.SetProfiles(profiles)
	return l
}

// Profiles returns the profiles in display order. The slice is a copy.
func (l *Library) Profiles() []*Profile {
	return slices.Clone(l.profiles)
}

func (l *Library) Len() int { return len(l.profiles) }

// SetProfiles replaces the whole collection. Nil entries are dropped.
func (l *Library) SetProfiles(profiles []*Profile) {
	l.profiles = make([]*Profile, 0, len(profiles))
	for _, p := range profiles {
		if p != nil {
			l.profiles = append(l.profiles, p)
		}
	}
	l.notify(FieldProfiles)
}

// Profile returns the profile called name, or nil.
func (l *Library) Profile(name string) *Profile {
	for _, p := range l.profiles {
		if p.name == name {
			return p
		}
	}
	return nil
}

func (l *Library) HasProfile(name string) bool {
	return l.Profile(name) != nil
}

// AddProfile appends p, rejecting a name already in use.
func (l *Library) AddProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile: %w", ErrInvalidName)
	}
	if l.HasProfile(p.name) {
		return fmt.Errorf("profile %q: %w", p.name, ErrDuplicateName)
	}
	l.profiles = append(l.profiles, p)
	l.notify(FieldProfiles)
	return nil
}

// CreateProfile adds a new empty profile called name.
func (l *Library) CreateProfile(name string) (*Profile, error) {
	p, err := EmptyProfile(name)
	if err != nil {
		return nil, err
	}
	if err := l.AddProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RenameProfile renames p, which must belong to the library.
func (l *Library) RenameProfile(p *Profile, name string) error {
	if p == nil || !slices.Contains(l.profiles, p) {
		return fmt.Errorf("rename profile: %w", ErrNotMember)
	}
	if err := validateName("profile", name); err != nil {
		return err
	}
	if p.name == name {
		return nil
	}
	if l.HasProfile(name) {
		return fmt.Errorf("profile %q: %w", name, ErrDuplicateName)
	}
	return p.SetName(name)
}

// RemoveProfile deletes p together with its folders and notes.
func (l *Library) RemoveProfile(p *Profile) bool {
	i := slices.Index(l.profiles, p)
	if i < 0 {
		return false
	}
	l.profiles = slices.Delete(l.profiles, i, i+1)
	l.notify(FieldProfiles)
	return true
}

// MoveFolder moves f from src to the top of dst. Moving within one profile is
// a no-op. It fails with ErrDuplicateName if dst already has a folder with the
// same name; nothing is changed in that case.
func (l *Library) MoveFolder(f *Folder, src, dst *Profile) error {
	if f == nil || src == nil || dst == nil {
		return fmt.Errorf("move folder: %w", ErrNotMember)
	}
	if src == dst {
		return nil
	}
	if !src.Contains(f) {
		return fmt.Errorf("move folder %q: source profile %q: %w", f.name, src.name, ErrNotMember)
	}
	if err := dst.InsertFolder(0, f); err != nil {
		return err
	}
	src.RemoveFolder(f)
	return nil
}

// MoveNote moves n from src to the top of dst. Moving within one folder is a no-op.
func (l *Library) MoveNote(n *Note, src, dst *Folder) error {
	if n == nil || src == nil || dst == nil {
		return fmt.Errorf("move note: %w", ErrNotMember)
	}
	if src == dst {
		return nil
	}
	if !src.Contains(n) {
		return fmt.Errorf("move note: source folder %q: %w", src.name, ErrNotMember)
	}
	dst.InsertNote(0, n)
	src.RemoveNote(n)
	return nil
}

// ContainsFolder reports whether f belongs to any profile of the library.
func (l *Library) ContainsFolder(f *Folder) bool {
	for _, p := range l.profiles {
		if p.Contains(f) {
			return true
		}
	}
	return false
}

// ContainsNote reports whether n belongs to any folder of the library.
func (l *Library) ContainsNote(n *Note) bool {
	for _, p := range l.profiles {
		for _, f := range p.folders {
			if f.Contains(n) {
				return true
			}
		}
	}
	return false
}

// Validate reports every sibling name collision. Loading never rejects a file
// because of one; callers log the result.
func (l *Library) Validate() error {
	var errs []error
	seenProfiles := make(map[string]bool, len(l.profiles))
	for _, p := range l.profiles {
		if seenProfiles[p.name] {
			errs = append(errs, fmt.Errorf("profile %q: %w", p.name, ErrDuplicateName))
		}
		seenProfiles[p.name] = true

		seenFolders := make(map[string]bool, len(p.folders))
		for _, f := range p.folders {
			if seenFolders[f.name] {
				errs = append(errs, fmt.Errorf("folder %q in profile %q: %w", f.name, p.name, ErrDuplicateName))
			}
			seenFolders[f.name] = true
		}
	}
	return errors.Join(errs...)
}
