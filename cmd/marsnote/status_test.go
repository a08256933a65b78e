package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote"
	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/autosave"
)

func TestBuildSessionTree(t *testing.T) {
	tree := buildSessionTree(marsnote.SessionState{
		SavePath:  "/notes/mn-save.json",
		Profiles:  2,
		Scheduler: autosave.SchedulerState{Running: true, Interval: 5},
		Repo:      fs.RepositoryState{Format: "json"},
	})

	assert.Equal(t, "Session", tree.Name)
	assert.Equal(t, "2", tree.Metadata["profiles"])
	require.Len(t, tree.Children, 2)
	assert.Equal(t, "running", tree.Children[0].Status)
	assert.Equal(t, "5m", tree.Children[0].Metadata["interval"])
	assert.Equal(t, "suspended", tree.Children[1].Children[0].Status)
}

func TestBuildSessionTree_DisabledAutoSave(t *testing.T) {
	tree := buildSessionTree(marsnote.SessionState{
		Scheduler: autosave.SchedulerState{Running: true},
	})
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "suspended", tree.Children[0].Status)
}
