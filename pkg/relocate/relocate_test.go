package relocate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/adapters/fs"
	"github.com/aretw0/marsnote/pkg/core"
	"github.com/aretw0/marsnote/pkg/relocate"
)

type liveSaver struct {
	repo *fs.Repository
	lib  *core.Library
	err  error
	hits []string
}

func (s *liveSaver) SaveTo(ctx context.Context, path string) error {
	s.hits = append(s.hits, path)
	if s.err != nil {
		return s.err
	}
	return s.repo.SaveProfiles(ctx, s.lib, path)
}

type countingRestarter struct{ n int }

func (r *countingRestarter) ScheduleRestart(context.Context) error {
	r.n++
	return nil
}

type fixture struct {
	oldDir, newDir string
	saver          *liveSaver
	settings       *fs.SettingsStore
	restarter      *countingRestarter
	relocated      []string
	flow           *relocate.Flow
}

func setup(t *testing.T) *fixture {
	t.Helper()
	appDir := t.TempDir()
	oldDir := filepath.Join(t.TempDir(), "old")
	newDir := filepath.Join(t.TempDir(), "new")
	require.NoError(t, os.MkdirAll(oldDir, 0o755))
	require.NoError(t, os.MkdirAll(newDir, 0o755))

	repo := fs.NewRepository(fs.Config{})
	store := fs.NewSettingsStore(appDir, nil, nil)
	settings := store.Load(context.Background())
	settings.SetSaveFileLocation(oldDir)

	fx := &fixture{
		oldDir:    oldDir,
		newDir:    newDir,
		saver:     &liveSaver{repo: repo, lib: core.Seed()},
		settings:  store,
		restarter: &countingRestarter{},
	}
	fx.flow = relocate.New(relocate.Deps{
		Saver:     fx.saver,
		Repo:      repo,
		Settings:  store,
		Restarter: fx.restarter,
		Relocated: func(dir string) { fx.relocated = append(fx.relocated, dir) },
	}, settings, fs.SaveFileName)
	return fx
}

func writeForeignSave(t *testing.T, dir string) []byte {
	t.Helper()
	data := []byte(`[{"name":"Elsewhere","folders":[]}]`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.SaveFileName), data, 0o644))
	return data
}

func TestChoose_MissingOrCurrentDirectory(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	require.NoError(t, fx.flow.Choose(ctx, filepath.Join(fx.newDir, "does-not-exist")))
	assert.Equal(t, relocate.Idle, fx.flow.Phase())

	require.NoError(t, fx.flow.Choose(ctx, fx.oldDir))
	assert.Equal(t, relocate.Idle, fx.flow.Phase())

	assert.Empty(t, fx.saver.hits)
	assert.NoFileExists(t, fx.settings.Path())
}

func TestChoose_NoConflictOverwrites(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	require.NoError(t, fx.flow.Choose(ctx, fx.newDir))

	assert.Equal(t, relocate.RestartPending, fx.flow.Phase())
	assert.Equal(t, []string{filepath.Join(fx.newDir, fs.SaveFileName)}, fx.saver.hits)
	assert.Equal(t, 1, fx.restarter.n)
	assert.Equal(t, fx.newDir, fx.settings.Load(ctx).SaveFileLocation())
	assert.Equal(t, []string{fx.newDir}, fx.relocated)
}

func TestResolve_Load(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	foreign := writeForeignSave(t, fx.newDir)

	require.NoError(t, fx.flow.Choose(ctx, fx.newDir))
	require.Equal(t, relocate.AwaitingUserChoice, fx.flow.Phase())

	require.NoError(t, fx.flow.Resolve(ctx, relocate.Load))
	assert.Equal(t, relocate.RestartPending, fx.flow.Phase())

	// The old location gets a fresh copy of the live data.
	oldPath := filepath.Join(fx.oldDir, fs.SaveFileName)
	assert.Equal(t, []string{oldPath}, fx.saver.hits)
	lib, err := fs.NewRepository(fs.Config{}).LoadProfiles(ctx, oldPath)
	require.NoError(t, err)
	assert.True(t, lib.HasProfile(core.SeedProfileName))

	// The new location keeps its data and becomes the configured one.
	got, err := os.ReadFile(filepath.Join(fx.newDir, fs.SaveFileName))
	require.NoError(t, err)
	assert.Equal(t, string(foreign), string(got))
	assert.Equal(t, fx.newDir, fx.settings.Load(ctx).SaveFileLocation())
	assert.Equal(t, 1, fx.restarter.n)
}

func TestResolve_Overwrite(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	writeForeignSave(t, fx.newDir)

	require.NoError(t, fx.flow.Choose(ctx, fx.newDir))
	require.NoError(t, fx.flow.Resolve(ctx, relocate.Overwrite))

	lib, err := fs.NewRepository(fs.Config{}).LoadProfiles(ctx, filepath.Join(fx.newDir, fs.SaveFileName))
	require.NoError(t, err)
	assert.True(t, lib.HasProfile(core.SeedProfileName))
	assert.False(t, lib.HasProfile("Elsewhere"))
}

func TestResolve_Cancel(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	foreign := writeForeignSave(t, fx.newDir)

	require.NoError(t, fx.flow.Choose(ctx, fx.newDir))
	require.NoError(t, fx.flow.Resolve(ctx, relocate.Cancel))

	assert.Equal(t, relocate.Idle, fx.flow.Phase())
	assert.Empty(t, fx.saver.hits)
	assert.Equal(t, 0, fx.restarter.n)
	assert.NoFileExists(t, fx.settings.Path())
	assert.Empty(t, fx.relocated)

	got, _ := os.ReadFile(filepath.Join(fx.newDir, fs.SaveFileName))
	assert.Equal(t, string(foreign), string(got))
}

func TestResolve_OutOfPhase(t *testing.T) {
	fx := setup(t)
	err := fx.flow.Resolve(context.Background(), relocate.Overwrite)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestApply_SaveFailureReturnsToIdle(t *testing.T) {
	fx := setup(t)
	fx.saver.err = errors.New("disk full")

	err := fx.flow.Choose(context.Background(), fx.newDir)
	require.Error(t, err)
	assert.Equal(t, relocate.Idle, fx.flow.Phase())
	assert.NoFileExists(t, fx.settings.Path())
	assert.Equal(t, 0, fx.restarter.n)
	assert.Empty(t, fx.relocated)
}

func TestParseChoice(t *testing.T) {
	for in, want := range map[string]relocate.Choice{"overwrite": relocate.Overwrite, "l": relocate.Load, "": relocate.Cancel} {
		got, err := relocate.ParseChoice(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := relocate.ParseChoice("maybe")
	assert.Error(t, err)
}
