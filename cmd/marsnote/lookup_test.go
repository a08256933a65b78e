package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/core"
)

func TestLookups(t *testing.T) {
	lib := core.Seed()

	p, err := findProfile(lib, core.SeedProfileName)
	require.NoError(t, err)
	assert.Equal(t, core.SeedProfileName, p.Name())

	_, err = findProfile(lib, "missing")
	assert.ErrorIs(t, err, errNoSuchItem)

	_, f, err := findFolder(lib, core.SeedProfileName, core.SeedFolderName)
	require.NoError(t, err)
	assert.Equal(t, core.SeedFolderName, f.Name())

	_, _, err = findFolder(lib, core.SeedProfileName, "missing")
	assert.ErrorIs(t, err, errNoSuchItem)

	_, n, err := findNote(lib, core.SeedProfileName, core.SeedFolderName, core.SeedNoteName)
	require.NoError(t, err)
	assert.Equal(t, core.SeedNoteName, n.Name())

	_, _, err = findNote(lib, core.SeedProfileName, core.SeedFolderName, "missing")
	assert.ErrorIs(t, err, errNoSuchItem)
}

func TestConfirm(t *testing.T) {
	tests := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
		"yes":   true,
	}
	for in, want := range tests {
		assert.Equal(t, want, confirm(strings.NewReader(in), "thing"), "input %q", in)
	}
}
