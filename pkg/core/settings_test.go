package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/core"
)

func TestSettings_Defaults(t *testing.T) {
	s := core.DefaultSettings("/data")

	assert.Equal(t, "/data", s.SaveFileLocation())
	assert.Equal(t, "Red", s.AccentColour())
	assert.Equal(t, 0, s.AutoSave())
	assert.True(t, s.SaveWindowPosition())
	assert.False(t, s.AlwaysOnTop())
	assert.False(t, s.StartOnSystemStartup())
}

func TestSettings_Clamps(t *testing.T) {
	s := core.DefaultSettings("/data")

	s.SetAutoSave(-5)
	assert.Equal(t, 0, s.AutoSave())
	s.SetAutoSave(120)
	assert.Equal(t, 60, s.AutoSave())
	s.SetAutoSave(15)
	assert.Equal(t, 15, s.AutoSave())

	s.SetAccentColour("Blue")
	assert.Equal(t, "Blue", s.AccentColour())
	s.SetAccentColour("Yellow")
	assert.Equal(t, "Red", s.AccentColour())
	s.SetAccentColour("NotARealColour")
	assert.Equal(t, "Red", s.AccentColour())

	s.SetSaveFileLocation("  ")
	assert.Equal(t, "/data", s.SaveFileLocation())
}

func TestAvailableAccents(t *testing.T) {
	accents := core.AvailableAccents()
	assert.NotContains(t, accents, "Yellow")
	assert.Contains(t, accents, "Red")
	assert.Len(t, accents, 22)
	for _, a := range accents {
		assert.True(t, core.ValidAccent(a), a)
	}
}

func TestSettings_JSON(t *testing.T) {
	s := core.DefaultSettings("/data")
	s.SetSaveFileLocation("/elsewhere")
	s.SetAccentColour("Teal")
	s.SetAutoSave(5)
	s.SetSaveWindowPosition(false)
	s.SetAlwaysOnTop(true)
	s.SetStartOnSystemStartup(true)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"saveFileLocation":"/elsewhere","accentColour":"Teal","autoSave":5,"saveWindowPosition":false,"alwaysOnTop":true}`, string(data))

	got, err := core.ParseSettings(data, "/data")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", got.SaveFileLocation())
	assert.Equal(t, "Teal", got.AccentColour())
	assert.Equal(t, 5, got.AutoSave())
	assert.False(t, got.SaveWindowPosition())
	assert.True(t, got.AlwaysOnTop())
	assert.False(t, got.StartOnSystemStartup())
}

func TestParseSettings_Normalizes(t *testing.T) {
	got, err := core.ParseSettings([]byte(`{"saveFileLocation":null,"accentColour":"Yellow","autoSave":999,"unknown":1}`), "/data")
	require.NoError(t, err)
	assert.Equal(t, "/data", got.SaveFileLocation())
	assert.Equal(t, "Red", got.AccentColour())
	assert.Equal(t, 60, got.AutoSave())
	assert.True(t, got.SaveWindowPosition())

	_, err = core.ParseSettings([]byte(`{"autoSave":"ten"}`), "/data")
	assert.Error(t, err)
}

func TestState_JSON(t *testing.T) {
	data, err := json.Marshal(core.NewState("P", ""))
	require.NoError(t, err)
	assert.Equal(t, `{"profile":"P","folder":null}`, string(data))

	s, err := core.ParseState(data)
	require.NoError(t, err)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "P", *s.Profile)
	assert.Nil(t, s.Folder)
}
