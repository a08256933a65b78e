package core

import "time"

// Note is a single note: a leaf of the hierarchy owned by exactly one Folder.
//
// Writing any field other than LastModified and Pinned refreshes LastModified,
// but only once construction has finished. The constructor assigns fields
// through the same setters, so the ready flag keeps it from stamping its own
// modification time.
type Note struct {
	notifier

	name         string
	description  string
	content      string
	colour       Colour
	lastModified time.Time
	pinned       bool

	ready bool
}

// NewNote builds a note from explicit field values. A nil colour means
// Transparent. This is the constructor used by deserialization.
func NewNote(name, description, content string, colour *Colour, lastModified time.Time, pinned bool) *Note {
	n := &Note{}
	n.SetName(name)
	n.SetDescription(description)
	n.SetContent(content)
	n.SetColour(colour)
	n.SetLastModified(lastModified)
	n.SetPinned(pinned)
	n.ready = true
	return n
}

// BlankNote returns an empty, unpinned, transparent note modified now.
func BlankNote() *Note {
	return NewNote("", "", "", nil, now(), false)
}

func (n *Note) modified() {
	if n.ready {
		n.SetLastModified(now())
	}
}

func (n *Note) Name() string { return n.name }

func (n *Note) SetName(name string) {
	n.name = name
	n.notify(FieldName)
	n.modified()
}

func (n *Note) Description() string { return n.description }

func (n *Note) SetDescription(description string) {
	n.description = description
	n.notify(FieldDescription)
	n.modified()
}

// Content is the rich-text payload. It is stored verbatim.
func (n *Note) Content() string { return n.content }

func (n *Note) SetContent(content string) {
	n.content = content
	n.notify(FieldContent)
	n.modified()
}

func (n *Note) Colour() Colour { return n.colour }

// SetColour assigns the colour tag. Nil means Transparent; any other colour
// has its alpha channel forced to full.
func (n *Note) SetColour(c *Colour) {
	if c == nil {
		n.colour = Transparent
	} else {
		n.colour = c.opaque()
	}
	n.notify(FieldColour)
	n.modified()
}

func (n *Note) LastModified() time.Time { return n.lastModified }

func (n *Note) SetLastModified(t time.Time) {
	n.lastModified = t
	n.notify(FieldLastModified)
}

func (n *Note) Pinned() bool { return n.pinned }

func (n *Note) SetPinned(pinned bool) {
	n.pinned = pinned
	n.notify(FieldPinned)
}
