package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/core"
	"github.com/aretw0/marsnote/pkg/order"
)

func at(sec int) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}

func names[T interface{ Name() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name()
	}
	return out
}

type pin struct {
	id     string
	pinned bool
}

func (p pin) Pinned() bool { return p.pinned }

func TestPinFirst(t *testing.T) {
	items := []pin{{"a", false}, {"b", true}, {"c", false}, {"d", true}, {"e", false}}
	order.PinFirst(items)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.id
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, got)

	var empty []pin
	order.PinFirst(empty)
	assert.Empty(t, empty)
}

func TestNotes_PinnedFirstThenNewest(t *testing.T) {
	a := core.NewNote("A", "", "", nil, at(1), false)
	b := core.NewNote("B", "", "", nil, at(3), false)
	c := core.NewNote("C", "", "", nil, at(2), true)

	notes := []*core.Note{a, b, c}
	order.Notes(notes)
	assert.Equal(t, []string{"C", "B", "A"}, names(notes))
}

func TestFolders_ByNameThenPinned(t *testing.T) {
	mk := func(name string, pinned bool) *core.Folder {
		f, err := core.NewFolder(name, nil, pinned)
		require.NoError(t, err)
		return f
	}
	folders := []*core.Folder{mk("b", false), mk("Z", true), mk("a", false), mk("B", true)}
	order.Folders(folders)
	assert.Equal(t, []string{"B", "Z", "a", "b"}, names(folders))
}

func TestProfiles_OrdinalNoPinPass(t *testing.T) {
	mk := func(name string) *core.Profile {
		p, err := core.EmptyProfile(name)
		require.NoError(t, err)
		return p
	}
	profiles := []*core.Profile{mk("beta"), mk("Alpha"), mk("alpha"), mk("Beta")}
	order.Profiles(profiles)
	assert.Equal(t, []string{"Alpha", "Beta", "alpha", "beta"}, names(profiles))
}

func sample(t *testing.T) *core.Library {
	t.Helper()
	n1 := core.NewNote("old", "", "", nil, at(10), false)
	n2 := core.NewNote("new", "", "", nil, at(30), false)
	n3 := core.NewNote("pinned", "", "", nil, at(20), true)
	f1, _ := core.NewFolder("Zeta", []*core.Note{n1, n2, n3}, false)
	f2, _ := core.NewFolder("Alpha", nil, false)
	f3, _ := core.NewFolder("Mid", nil, true)
	p1, _ := core.NewProfile("Work", []*core.Folder{f1, f2, f3})
	p2, _ := core.NewProfile("Home", nil)
	return core.NewLibrary([]*core.Profile{p1, p2})
}

func TestCanonical(t *testing.T) {
	live := sample(t)
	before, err := json.Marshal(live)
	require.NoError(t, err)

	got, err := order.Canonical(live)
	require.NoError(t, err)

	assert.Equal(t, []string{"Home", "Work"}, names(got.Profiles()))
	work := got.Profile("Work")
	assert.Equal(t, []string{"Mid", "Alpha", "Zeta"}, names(work.Folders()))
	assert.Equal(t, []string{"pinned", "new", "old"}, names(work.Folder("Zeta").Notes()))

	t.Run("Live Order Untouched", func(t *testing.T) {
		after, err := json.Marshal(live)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("Idempotent", func(t *testing.T) {
		once, err := json.Marshal(got)
		require.NoError(t, err)
		again, err := order.Canonical(got)
		require.NoError(t, err)
		twice, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(once), string(twice))
	})

	t.Run("Nil Library", func(t *testing.T) {
		empty, err := order.Canonical(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, empty.Len())
	})
}
