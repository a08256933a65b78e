package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/marsnote/pkg/core"
)

// Serializer defines how to read and write the library in a specific format.
type Serializer interface {
	// Format is the short name of the format, e.g. "json".
	Format() string
	// Encode converts the library to bytes. The library is written in the
	// order given; callers order it first.
	Encode(lib *core.Library) ([]byte, error)
	// Decode reads a library. Empty input yields an empty library.
	Decode(data []byte) (*core.Library, error)
}

// DefaultSerializers returns the supported formats keyed by name.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": NewJSONSerializer(),
		"yaml": NewYAMLSerializer(),
		"yml":  NewYAMLSerializer(),
	}
}

// SerializerFor looks up a serializer by format name or file extension.
func SerializerFor(format string) (Serializer, error) {
	name := strings.ToLower(strings.TrimPrefix(format, "."))
	if s, ok := DefaultSerializers()[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// --- JSON Serializer ---

// JSONSerializer writes the save file format.
type JSONSerializer struct {
	// Indent is used for pretty printing. Empty produces compact output.
	Indent string
}

// NewJSONSerializer creates a JSON serializer with two space indentation.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "  "}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Encode(lib *core.Library) ([]byte, error) {
	if lib == nil {
		lib = core.NewLibrary(nil)
	}
	if s.Indent == "" {
		return json.Marshal(lib)
	}
	return json.MarshalIndent(lib, "", s.Indent)
}

func (s *JSONSerializer) Decode(data []byte) (*core.Library, error) {
	lib, err := core.ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return lib, nil
}

// --- YAML Serializer ---

// YAMLSerializer is a human-editable export format with the same fields as
// the save file.
type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer { return &YAMLSerializer{} }

func (s *YAMLSerializer) Format() string { return "yaml" }

type yamlNote struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Content      string `yaml:"content"`
	Colour       string `yaml:"colour"`
	LastModified string `yaml:"lastModified"`
	Pinned       bool   `yaml:"pinned"`
}

type yamlFolder struct {
	Name   string     `yaml:"name"`
	Notes  []yamlNote `yaml:"notes"`
	Pinned bool       `yaml:"pinned"`
}

type yamlProfile struct {
	Name    string       `yaml:"name"`
	Folders []yamlFolder `yaml:"folders"`
}

func (s *YAMLSerializer) Encode(lib *core.Library) ([]byte, error) {
	out := []yamlProfile{}
	if lib != nil {
		for _, p := range lib.Profiles() {
			yp := yamlProfile{Name: p.Name(), Folders: []yamlFolder{}}
			for _, f := range p.Folders() {
				yf := yamlFolder{Name: f.Name(), Notes: []yamlNote{}, Pinned: f.Pinned()}
				for _, n := range f.Notes() {
					yf.Notes = append(yf.Notes, yamlNote{
						Name:         n.Name(),
						Description:  n.Description(),
						Content:      n.Content(),
						Colour:       n.Colour().Hex(),
						LastModified: n.LastModified().Format(time.RFC3339Nano),
						Pinned:       n.Pinned(),
					})
				}
				yp.Folders = append(yp.Folders, yf)
			}
			out = append(out, yp)
		}
	}
	return yaml.Marshal(out)
}

func (s *YAMLSerializer) Decode(data []byte) (*core.Library, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return core.NewLibrary(nil), nil
	}

	var in []yamlProfile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	profiles := make([]*core.Profile, 0, len(in))
	for _, yp := range in {
		folders := make([]*core.Folder, 0, len(yp.Folders))
		for _, yf := range yp.Folders {
			notes := make([]*core.Note, 0, len(yf.Notes))
			for _, yn := range yf.Notes {
				n, err := yn.note()
				if err != nil {
					return nil, fmt.Errorf("invalid yaml: folder %q: %w", yf.Name, err)
				}
				notes = append(notes, n)
			}
			f, err := core.NewFolder(yf.Name, notes, yf.Pinned)
			if err != nil {
				return nil, fmt.Errorf("invalid yaml: %w", err)
			}
			folders = append(folders, f)
		}
		p, err := core.NewProfile(yp.Name, folders)
		if err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
		profiles = append(profiles, p)
	}
	return core.NewLibrary(profiles), nil
}

func (yn yamlNote) note() (*core.Note, error) {
	var colour *core.Colour
	if yn.Colour != "" {
		c, err := core.ParseColour(yn.Colour)
		if err != nil {
			return nil, err
		}
		colour = &c
	}

	var modified time.Time
	if yn.LastModified != "" {
		t, err := time.Parse(time.RFC3339Nano, yn.LastModified)
		if err != nil {
			return nil, fmt.Errorf("lastModified: %w", err)
		}
		modified = t
	}

	return core.NewNote(yn.Name, yn.Description, yn.Content, colour, modified, yn.Pinned), nil
}
