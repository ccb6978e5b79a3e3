// Test Type: Unit Test
// Description: Tests for archive format detection, listing and extraction

package archive_test

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/archive"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modFiles = testutil.ArchiveFiles{
	"MyMod/":                 "",
	"MyMod/game/":            "",
	"MyMod/game/scripts.rpa": "mod scripts",
	"MyMod/renpy/common.rpy": "renpy common",
	"MyMod/MyMod.exe":        "launcher binary",
	"MyMod/README.txt":       "read me",
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		allowed []string
		want    archive.Format
		wantErr bool
	}{
		{"zip", "/dl/mod.zip", nil, archive.FormatZip, false},
		{"upper_case_zip", "/dl/MOD.ZIP", nil, archive.FormatZip, false},
		{"tar_gz", "/dl/mod.tar.gz", nil, archive.FormatTarGz, false},
		{"tgz", "/dl/mod.tgz", nil, archive.FormatTarGz, false},
		{"tar_xz", "/dl/mod.tar.xz", nil, archive.FormatTarXz, false},
		{"plain_tar", "/dl/mod.tar", nil, archive.FormatTar, false},
		{"rar_rejected", "/dl/mod.rar", nil, archive.FormatUnknown, true},
		{"no_extension", "/dl/mod", nil, archive.FormatUnknown, true},
		{"empty", "", nil, archive.FormatUnknown, true},
		{"zip_only_rejects_tar", "/dl/mod.tar.gz", []string{".zip"}, archive.FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := archive.Validate(tt.path, tt.allowed)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArchive))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPath(t *testing.T) {
	assert.Equal(t, "/dl/MyMod", archive.ExtractPath("/dl/MyMod.zip"))
	assert.Equal(t, "/dl/MyMod", archive.ExtractPath("/dl/MyMod.tar.gz"))
	assert.Equal(t, "/dl/MyMod", archive.ExtractPath("/dl/MyMod.TAR.XZ"))
	assert.Equal(t, "/dl/My.Mod", archive.ExtractPath("/dl/My.Mod.zip"))
}

func TestList(t *testing.T) {
	builders := map[string]func(*testing.T, *testutil.TestEnvironment, string) string{
		"mod.zip": func(t *testing.T, env *testutil.TestEnvironment, p string) string {
			return testutil.BuildZip(t, env.FS, p, modFiles)
		},
		"mod.tar.gz": func(t *testing.T, env *testutil.TestEnvironment, p string) string {
			return testutil.BuildTarGz(t, env.FS, p, modFiles)
		},
		"mod.tar.xz": func(t *testing.T, env *testutil.TestEnvironment, p string) string {
			return testutil.BuildTarXz(t, env.FS, p, modFiles)
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			path := build(t, env, filepath.Join(env.Downloads, name))

			members, err := archive.List(env.FS, path)
			require.NoError(t, err)
			assert.Len(t, members, len(modFiles))

			var total int64
			for _, m := range members {
				total += m.Size
			}
			assert.Equal(t, modFiles.TotalSize(), total)
		})
	}
}

func TestList_CorruptArchive(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := filepath.Join(env.Downloads, "broken.zip")
	require.NoError(t, env.FS.WriteFile(path, []byte("definitely not a zip"), 0644))

	_, err := archive.List(env.FS, path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArchive))
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("zip_to_sibling_directory", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		log := &testutil.LogRecorder{}
		path := testutil.BuildZip(t, env.FS, filepath.Join(env.Downloads, "MyMod.zip"), modFiles)

		result, err := archive.NewExtractor(env.FS, log).Extract(path)
		require.NoError(t, err)

		dest := filepath.Join(env.Downloads, "MyMod")
		assert.Equal(t, dest, result.Dir)
		assert.Equal(t, 4, result.Files)
		assert.Empty(t, result.Skipped)
		testutil.AssertFileContent(t, env.FS, filepath.Join(dest, "MyMod", "game", "scripts.rpa"), "mod scripts")
		testutil.AssertFileContent(t, env.FS, filepath.Join(dest, "MyMod", "renpy", "common.rpy"), "renpy common")
		assert.True(t, log.Contains("Extracted archive to: "+dest))
	})

	t.Run("tarball_preserves_modification_time", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := testutil.BuildTarGz(t, env.FS, filepath.Join(env.Downloads, "MyMod.tar.gz"), modFiles)

		result, err := archive.NewExtractor(env.FS, nil).Extract(path)
		require.NoError(t, err)

		info, err := env.FS.Stat(filepath.Join(result.Dir, "MyMod", "MyMod.exe"))
		require.NoError(t, err)
		assert.Equal(t, 2017, info.ModTime().Year())
	})

	t.Run("re_extraction_overwrites", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := testutil.BuildZip(t, env.FS, filepath.Join(env.Downloads, "MyMod.zip"), modFiles)
		ex := archive.NewExtractor(env.FS, nil)

		_, err := ex.Extract(path)
		require.NoError(t, err)
		result, err := ex.Extract(path)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Files)
	})

	t.Run("zip_slip_rejected", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := testutil.BuildZip(t, env.FS, filepath.Join(env.Downloads, "evil.zip"), testutil.ArchiveFiles{
			"ok.txt":          "fine",
			"../../escape.sh": "rm -rf",
		})

		_, err := archive.NewExtractor(env.FS, nil).Extract(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExtraction))
		testutil.AssertNotExists(t, env.FS, filepath.Join(env.Root, "escape.sh"))
	})

	t.Run("permission_collision_is_tolerated", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := testutil.BuildZip(t, env.FS, filepath.Join(env.Downloads, "MyMod.zip"), modFiles)
		locked := filepath.Join(env.Downloads, "MyMod", "MyMod", "MyMod.exe")
		faulty := testutil.NewFaultyFS(env.FS).
			FailOn("openfile", locked, &fs.PathError{Op: "open", Path: locked, Err: fs.ErrPermission})
		log := &testutil.LogRecorder{}

		result, err := archive.NewExtractor(faulty, log).Extract(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"MyMod/MyMod.exe"}, result.Skipped)
		assert.Equal(t, 3, result.Files)
		assert.True(t, log.Contains("already extracted"))
	})

	t.Run("other_write_errors_are_fatal", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := testutil.BuildZip(t, env.FS, filepath.Join(env.Downloads, "MyMod.zip"), modFiles)
		target := filepath.Join(env.Downloads, "MyMod", "MyMod", "MyMod.exe")
		faulty := testutil.NewFaultyFS(env.FS).FailOn("openfile", target, stderrors.New("disk full"))

		_, err := archive.NewExtractor(faulty, nil).Extract(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExtraction))
	})

	t.Run("unsupported_format", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := filepath.Join(env.Downloads, "mod.rar")
		require.NoError(t, env.FS.WriteFile(path, []byte("rar"), 0644))

		_, err := archive.NewExtractor(env.FS, nil).Extract(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArchive))
	})
}
