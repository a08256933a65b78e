package core

import (
	"bytes"
	"encoding/json"
	"time"
)

// Wire structs fix the field order of the save file. Unknown keys are ignored
// on read and missing keys take the zero value, except colour (Transparent)
// and collections (empty).

type noteJSON struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	Colour       *Colour   `json:"colour"`
	LastModified time.Time `json:"lastModified"`
	Pinned       bool      `json:"pinned"`
}

type folderJSON struct {
	Name   string  `json:"name"`
	Notes  []*Note `json:"notes"`
	Pinned bool    `json:"pinned"`
}

type profileJSON struct {
	Name    string    `json:"name"`
	Folders []*Folder `json:"folders"`
}

func (n *Note) MarshalJSON() ([]byte, error) {
	colour := n.colour
	return json.Marshal(noteJSON{
		Name:         n.name,
		Description:  n.description,
		Content:      n.content,
		Colour:       &colour,
		LastModified: n.lastModified,
		Pinned:       n.pinned,
	})
}

// UnmarshalJSON replaces n with a note built by NewNote, so no default from a
// blank note (such as a fresh modification time) survives into the result.
func (n *Note) UnmarshalJSON(data []byte) error {
	var w noteJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = *NewNote(w.Name, w.Description, w.Content, w.Colour, w.LastModified, w.Pinned)
	return nil
}

func (f *Folder) MarshalJSON() ([]byte, error) {
	return json.Marshal(folderJSON{
		Name:   f.name,
		Notes:  nonNil(f.notes),
		Pinned: f.pinned,
	})
}

func (f *Folder) UnmarshalJSON(data []byte) error {
	var w folderJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewFolder(w.Name, w.Notes, w.Pinned)
	if err != nil {
		return err
	}
	*f = *built
	return nil
}

func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(profileJSON{
		Name:    p.name,
		Folders: nonNil(p.folders),
	})
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var w profileJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewProfile(w.Name, w.Folders)
	if err != nil {
		return err
	}
	*p = *built
	return nil
}

// MarshalJSON writes the library as a JSON array of profiles.
func (l *Library) MarshalJSON() ([]byte, error) {
	return json.Marshal(nonNil(l.profiles))
}

// UnmarshalJSON accepts a JSON array of profiles; null yields an empty library.
func (l *Library) UnmarshalJSON(data []byte) error {
	var profiles []*Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return err
	}
	*l = *NewLibrary(profiles)
	return nil
}

// ParseLibrary decodes a save file. Empty input and a literal null both yield
// an empty library.
func ParseLibrary(data []byte) (*Library, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewLibrary(nil), nil
	}
	l := &Library{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	return l, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
