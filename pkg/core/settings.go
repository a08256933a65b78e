package core

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// DefaultAccent is used whenever an accent name is unknown or disallowed.
const DefaultAccent = "Red"

// disallowedAccent is part of the theme palette but never offered.
const disallowedAccent = "Yellow"

// MaxAutoSave is the upper bound of the auto-save interval, in minutes.
const MaxAutoSave = 60

var accentPalette = []string{
	"Red", "Green", "Blue", "Purple", "Orange", "Lime", "Emerald", "Teal",
	"Cyan", "Cobalt", "Indigo", "Violet", "Pink", "Magenta", "Crimson", "Amber",
	"Yellow", "Brown", "Olive", "Steel", "Mauve", "Taupe", "Sienna",
}

// AvailableAccents lists the accent names a user may choose from.
func AvailableAccents() []string {
	out := make([]string, 0, len(accentPalette)-1)
	for _, a := range accentPalette {
		if a != disallowedAccent {
			out = append(out, a)
		}
	}
	return out
}

// ValidAccent reports whether name is an accent a user may choose.
func ValidAccent(name string) bool {
	return name != disallowedAccent && slices.Contains(accentPalette, name)
}

// Settings is the process-wide configuration stored in the settings file.
// Every setter normalizes its input, so a Settings value is always valid.
type Settings struct {
	defaultLocation string

	saveFileLocation   string
	accentColour       string
	autoSave           int
	saveWindowPosition bool
	alwaysOnTop        bool

	// Cached from the auto-start registrar, never written to the settings file.
	startOnSystemStartup bool
}

// DefaultSettings returns the all-defaults settings rooted at defaultLocation.
func DefaultSettings(defaultLocation string) *Settings {
	s := &Settings{defaultLocation: defaultLocation}
	s.SetSaveFileLocation("")
	s.SetAccentColour("")
	s.SetAutoSave(0)
	s.SetSaveWindowPosition(true)
	s.SetAlwaysOnTop(false)
	return s
}

// DefaultLocation is the directory used when no save location is set.
func (s *Settings) DefaultLocation() string { return s.defaultLocation }

func (s *Settings) SaveFileLocation() string { return s.saveFileLocation }

// SetSaveFileLocation assigns the save directory. A blank value selects the
// default location.
func (s *Settings) SetSaveFileLocation(dir string) {
	if strings.TrimSpace(dir) == "" {
		dir = s.defaultLocation
	}
	s.saveFileLocation = dir
}

func (s *Settings) AccentColour() string { return s.accentColour }

// SetAccentColour assigns the accent. Unknown names and the disallowed name
// are replaced by DefaultAccent.
func (s *Settings) SetAccentColour(name string) {
	if !ValidAccent(name) {
		name = DefaultAccent
	}
	s.accentColour = name
}

// AutoSave is the auto-save interval in minutes. Zero disables it.
func (s *Settings) AutoSave() int { return s.autoSave }

// SetAutoSave clamps minutes to [0, MaxAutoSave].
func (s *Settings) SetAutoSave(minutes int) {
	s.autoSave = max(0, min(minutes, MaxAutoSave))
}

// AutoSaveInterval converts AutoSave to a duration.
func (s *Settings) AutoSaveInterval() time.Duration {
	return time.Duration(s.autoSave) * time.Minute
}

func (s *Settings) SaveWindowPosition() bool { return s.saveWindowPosition }

func (s *Settings) SetSaveWindowPosition(v bool) { s.saveWindowPosition = v }

func (s *Settings) AlwaysOnTop() bool { return s.alwaysOnTop }

func (s *Settings) SetAlwaysOnTop(v bool) { s.alwaysOnTop = v }

func (s *Settings) StartOnSystemStartup() bool { return s.startOnSystemStartup }

func (s *Settings) SetStartOnSystemStartup(v bool) { s.startOnSystemStartup = v }

// Clone returns an independent copy, cached startup flag included.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// settingsJSON uses pointers so that absent keys can be told apart from zero
// values and given their documented defaults.
type settingsJSON struct {
	SaveFileLocation   *string `json:"saveFileLocation"`
	AccentColour       *string `json:"accentColour"`
	AutoSave           *int    `json:"autoSave"`
	SaveWindowPosition *bool   `json:"saveWindowPosition"`
	AlwaysOnTop        *bool   `json:"alwaysOnTop"`
}

func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(settingsJSON{
		SaveFileLocation:   &s.saveFileLocation,
		AccentColour:       &s.accentColour,
		AutoSave:           &s.autoSave,
		SaveWindowPosition: &s.saveWindowPosition,
		AlwaysOnTop:        &s.alwaysOnTop,
	})
}

// ParseSettings decodes a settings file. Missing keys take their defaults and
// every value goes through the normalizing setters.
func ParseSettings(data []byte, defaultLocation string) (*Settings, error) {
	var w settingsJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	s := DefaultSettings(defaultLocation)
	if w.SaveFileLocation != nil {
		s.SetSaveFileLocation(*w.SaveFileLocation)
	}
	if w.AccentColour != nil {
		s.SetAccentColour(*w.AccentColour)
	}
	if w.AutoSave != nil {
		s.SetAutoSave(*w.AutoSave)
	}
	if w.SaveWindowPosition != nil {
		s.SetSaveWindowPosition(*w.SaveWindowPosition)
	}
	if w.AlwaysOnTop != nil {
		s.SetAlwaysOnTop(*w.AlwaysOnTop)
	}
	return s, nil
}
