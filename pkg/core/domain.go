// Package core holds the MarsNote domain: the Profile → Folder → Note hierarchy,
// its wire format and the ports implemented by the storage adapters.
package core

import "time"

// Field names reported to observers. They match the JSON keys of the save file.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldContent      = "content"
	FieldColour       = "colour"
	FieldLastModified = "lastModified"
	FieldPinned       = "pinned"
	FieldNotes        = "notes"
	FieldFolders      = "folders"
	FieldProfiles     = "profiles"
)

// Pinnable is implemented by entities that can be pinned to the top of their list.
type Pinnable interface {
	Pinned() bool
}

// Observer receives the name of the field that changed.
type Observer func(field string)

type subscription struct {
	id int
	fn Observer
}

// notifier is embedded by every entity. Entities are not safe for concurrent
// use; the owner of the live library serializes access.
type notifier struct {
	next      int
	observers []subscription
}

// OnChange registers fn to be called after every field write and returns a
// function that removes the registration.
func (n *notifier) OnChange(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	n.next++
	id := n.next
	n.observers = append(n.observers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range n.observers {
			if s.id == id {
				n.observers = append(n.observers[:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) notify(field string) {
	for _, s := range n.observers {
		s.fn(field)
	}
}

// now is the clock used to stamp modifications. Monotonic readings are
// stripped so that stamped values survive a round trip unchanged.
var now = func() time.Time { return time.Now().Round(0) }

// EventType represents the type of change observed on disk.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to one of the application's files.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
