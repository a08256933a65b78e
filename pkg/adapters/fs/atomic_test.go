package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceFile(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SaveFileName)

		require.NoError(t, replaceFile(path, []byte("[]"), filePerm))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("Replaces Existing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SaveFileName)
		require.NoError(t, os.WriteFile(path, []byte(`[{"name":"old"}]`), filePerm))

		require.NoError(t, replaceFile(path, []byte(`[{"name":"new"}]`), filePerm))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"new"}]`, string(got))
	})

	t.Run("Keeps Existing Mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not preserved on windows")
		}
		path := filepath.Join(t.TempDir(), SettingsFileName)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		require.NoError(t, replaceFile(path, []byte(`{"autoSave":5}`), filePerm))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, replaceFile(filepath.Join(dir, SaveFileName), []byte("[]"), filePerm))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing_folder", SaveFileName)
		assert.Error(t, replaceFile(path, []byte("[]"), filePerm))
	})
}
