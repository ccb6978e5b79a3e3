// Test Type: Unit Test
// Description: Tests for game directory discovery across Steam libraries

package steam_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/steam"
	"github.com/arthur-debert/ddlcmod/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryManifest = `"libraryfolders"
{
	"0"
	{
		"path"		"/virtual/steam"
		"apps"
		{
			"228980"		"1"
		}
	}
	"1"
	{
		"path"		"/mnt/library"
		"apps"
		{
			"698780"		"1"
		}
	}
}
`

func TestLocator_FindGameDirectory(t *testing.T) {
	t.Run("found_under_base", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.WithGameInstall()
		base := filepath.Join(env.Root, "steam")

		result := steam.NewLocator(env.FS, steam.StaticRoot(base), steam.Options{}, nil).FindGameDirectory()

		require.True(t, result.Found)
		assert.Equal(t, env.GameDir, result.Path)
		assert.Equal(t, env.GameDir, result.String())
	})

	t.Run("found_in_library", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		base := filepath.Join(env.Root, "steam")
		env.WithFileTree(base, testutil.FileTree{
			"steamapps": testutil.FileTree{"libraryfolders.vdf": libraryManifest},
		})
		gameDir := filepath.Join("/mnt/library", "steamapps", "common", steam.DefaultFolderName)
		require.NoError(t, env.FS.MkdirAll(gameDir, 0755))
		log := &testutil.LogRecorder{}

		result := steam.NewLocator(env.FS, steam.StaticRoot(base), steam.Options{}, log).FindGameDirectory()

		require.True(t, result.Found)
		assert.Equal(t, gameDir, result.Path)
		assert.Equal(t, []string{
			filepath.Join(base, "steamapps", "common", steam.DefaultFolderName),
			gameDir,
		}, result.Probed)
		assert.True(t, log.Contains("Found Steam library with game: /mnt/library"))
	})

	t.Run("base_wins_over_library", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		env.WithGameInstall()
		base := filepath.Join(env.Root, "steam")
		env.WithFileTree(base, testutil.FileTree{
			"steamapps": testutil.FileTree{"libraryfolders.vdf": libraryManifest},
		})
		require.NoError(t, env.FS.MkdirAll(filepath.Join("/mnt/library", "steamapps", "common", steam.DefaultFolderName), 0755))

		result := steam.NewLocator(env.FS, steam.StaticRoot(base), steam.Options{}, nil).FindGameDirectory()

		assert.Equal(t, env.GameDir, result.Path)
		assert.Len(t, result.Probed, 1)
	})

	t.Run("not_installed", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		base := filepath.Join(env.Root, "steam")
		require.NoError(t, env.FS.MkdirAll(base, 0755))

		result := steam.NewLocator(env.FS, steam.StaticRoot(base), steam.Options{}, nil).FindGameDirectory()

		assert.False(t, result.Found)
		assert.Empty(t, result.Path)
		assert.Equal(t, steam.NotFoundMessage, result.String())
	})

	t.Run("no_steam", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		finder := steam.RootFunc(func() (string, error) {
			return "", stderrors.New("registry key missing")
		})
		log := &testutil.LogRecorder{}

		result := steam.NewLocator(env.FS, finder, steam.Options{}, log).FindGameDirectory()

		assert.False(t, result.Found)
		assert.Empty(t, result.Probed)
		assert.True(t, log.Contains("registry key missing"))
	})

	t.Run("empty_root_without_error", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		finder := steam.RootFunc(func() (string, error) { return "", nil })
		log := &testutil.LogRecorder{}

		result := steam.NewLocator(env.FS, finder, steam.Options{}, log).FindGameDirectory()

		assert.False(t, result.Found)
		assert.Empty(t, result.Probed)
		assert.True(t, log.Contains("Steam installation not found"))
		assert.False(t, log.Contains("<nil>"))
	})

	t.Run("custom_folder_names", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		base := filepath.Join(env.Root, "steam")
		custom := filepath.Join(base, "steamapps", "common", "DDLC Plus")
		require.NoError(t, env.FS.MkdirAll(custom, 0755))

		opts := steam.Options{FolderNames: []string{steam.DefaultFolderName, "DDLC Plus"}}
		result := steam.NewLocator(env.FS, steam.StaticRoot(base), opts, nil).FindGameDirectory()

		assert.Equal(t, custom, result.Path)
	})
}

func TestStaticRoot(t *testing.T) {
	_, err := steam.StaticRoot("").SteamRoot()
	assert.Error(t, err)

	root, err := steam.StaticRoot("/opt/steam").SteamRoot()
	require.NoError(t, err)
	assert.Equal(t, "/opt/steam", root)
}
