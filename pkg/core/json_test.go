package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/core"
)

var stamp = time.Date(2019, 3, 14, 15, 9, 26, 0, time.UTC)

func populated(t *testing.T) *core.Library {
	t.Helper()
	red := core.RGB(0xFF, 0, 0)
	n1 := core.NewNote("Shopping", "weekly", "{\\rtf1 milk}", &red, stamp, true)
	n2 := core.NewNote("", "", "", nil, stamp.Add(time.Hour), false)
	f, err := core.NewFolder("Home", []*core.Note{n1, n2}, true)
	require.NoError(t, err)
	empty, err := core.EmptyFolder("Empty")
	require.NoError(t, err)
	p, err := core.NewProfile("Personal", []*core.Folder{f, empty})
	require.NoError(t, err)
	return core.NewLibrary([]*core.Profile{p})
}

func TestLibrary_WireFormat(t *testing.T) {
	red := core.RGB(0xFF, 0, 0)
	n := core.NewNote("N", "D", "C", &red, stamp, true)
	f, _ := core.NewFolder("F", []*core.Note{n}, false)
	p, _ := core.NewProfile("P", []*core.Folder{f})

	data, err := json.Marshal(core.NewLibrary([]*core.Profile{p}))
	require.NoError(t, err)

	want := `[{"name":"P","folders":[{"name":"F","notes":[{"name":"N","description":"D","content":"C","colour":"#FF0000","lastModified":"2019-03-14T15:09:26Z","pinned":true}],"pinned":false}]}]`
	assert.Equal(t, want, string(data))

	data, err = json.Marshal(core.NewLibrary(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestParseLibrary_Defaults(t *testing.T) {
	lib, err := core.ParseLibrary([]byte(`[{"name":"P","folders":[{"name":"F","notes":[{"lastModified":"2019-03-14T15:09:26Z","extra":1}]},{"name":"G"}],"unknown":true}]`))
	require.NoError(t, err)

	p := lib.Profile("P")
	require.NotNil(t, p)
	f := p.Folder("F")
	require.NotNil(t, f)
	assert.False(t, f.Pinned())
	assert.Equal(t, 0, p.Folder("G").Len())

	n := f.Notes()[0]
	assert.Equal(t, "", n.Name())
	assert.True(t, n.Colour().IsTransparent())
	assert.False(t, n.Pinned())
	assert.Equal(t, stamp, n.LastModified())
}

func TestParseLibrary_Empty(t *testing.T) {
	for _, in := range []string{"", "  \n", "null", "[]"} {
		lib, err := core.ParseLibrary([]byte(in))
		require.NoError(t, err, "%q", in)
		assert.Equal(t, 0, lib.Len())
	}
}

func TestParseLibrary_Errors(t *testing.T) {
	bad := []string{
		`{`,
		`{"name":"P"}`,
		`[{"name":"","folders":[]}]`,
		`[{"name":"P","folders":[{"name":" "}]}]`,
		`[{"name":"P","folders":[{"name":"F","notes":[{"colour":"#12345"}]}]}]`,
		`[{"name":"P","folders":[{"name":"F","notes":[{"pinned":"yes"}]}]}]`,
	}
	for _, in := range bad {
		_, err := core.ParseLibrary([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestLibrary_RoundTrip(t *testing.T) {
	src := populated(t)

	data, err := json.Marshal(src)
	require.NoError(t, err)

	got, err := core.ParseLibrary(data)
	require.NoError(t, err)

	again, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestClone(t *testing.T) {
	src := populated(t)

	clone, err := src.Clone()
	require.NoError(t, err)

	want, _ := json.Marshal(src)
	got, _ := json.Marshal(clone)
	assert.Equal(t, string(want), string(got))

	t.Run("Timestamps Survive", func(t *testing.T) {
		orig := src.Profiles()[0].Folders()[0].Notes()[0]
		copied := clone.Profiles()[0].Folders()[0].Notes()[0]
		assert.Equal(t, orig.LastModified(), copied.LastModified())
	})

	t.Run("Clone Is Independent", func(t *testing.T) {
		copied := clone.Profiles()[0].Folders()[0]
		copied.Notes()[0].SetName("changed")
		copied.SetPinned(false)
		require.NoError(t, clone.Profiles()[0].SetName("Other"))

		after, _ := json.Marshal(src)
		assert.Equal(t, string(want), string(after))
	})

	t.Run("Each Level", func(t *testing.T) {
		p := src.Profiles()[0]
		pc, err := p.Clone()
		require.NoError(t, err)
		assert.NotSame(t, p, pc)
		assert.Equal(t, p.Name(), pc.Name())

		f := p.Folders()[0]
		fc, err := f.Clone()
		require.NoError(t, err)
		assert.Equal(t, f.Len(), fc.Len())

		n := f.Notes()[0]
		nc, err := n.Clone()
		require.NoError(t, err)
		assert.Equal(t, n.Content(), nc.Content())
		assert.Equal(t, n.Colour(), nc.Colour())
	})

	t.Run("Nil", func(t *testing.T) {
		var lib *core.Library
		c, err := lib.Clone()
		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}
