package core

// Names given to the library created on first run.
const (
	SeedProfileName = "Profile1"
	SeedFolderName  = "Folder1"
	SeedNoteName    = "Welcome!"
)

const seedContent = `Welcome to MarsNote!

A note taking application designed for simplicity, speed and customisability.

Profiles are the first way to separate notes, for example one for personal
notes and another for work. Folders organise notes inside each profile.

Each note has an optional name and description, a colour and its content.
Pinned notes always appear at the top of their folder.

Feel free to delete this profile and make your own.
`

// Seed builds the library written when no save file exists yet: one profile,
// one folder and one pinned welcome note.
func Seed() *Library {
	green := RGB(0x00, 0x80, 0x00)
	note := NewNote(SeedNoteName, "An introduction to MarsNote", seedContent, &green, now(), true)

	folder, _ := NewFolder(SeedFolderName, []*Note{note}, false)
	profile, _ := NewProfile(SeedProfileName, []*Folder{folder})

	return NewLibrary([]*Profile{profile})
}
