package core

import "encoding/json"

// State points at the profile and folder that were selected when the last
// session ended. Both are matched by name on the next start, so a rename
// breaks the link.
type State struct {
	Profile *string `json:"profile"`
	Folder  *string `json:"folder"`
}

// NewState records a selection. Empty names are stored as null.
func NewState(profile, folder string) State {
	var s State
	if profile != "" {
		s.Profile = &profile
	}
	if folder != "" {
		s.Folder = &folder
	}
	return s
}

// ParseState decodes a state file.
func ParseState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, err
	}
	return s, nil
}

// Resolve finds the recorded selection in lib. The folder is only looked up
// inside the matched profile; either result may be nil.
func (s State) Resolve(lib *Library) (*Profile, *Folder) {
	if lib == nil || s.Profile == nil {
		return nil, nil
	}
	p := lib.Profile(*s.Profile)
	if p == nil || s.Folder == nil {
		return p, nil
	}
	return p, p.Folder(*s.Folder)
}
