// Test Type: Integration Test
// Description: Tests for the validate, confirm and delete flow

package uninstall_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/testutil"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/uninstall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUninstaller(fsys types.FS, confirm types.ConfirmationGate, log types.LogSink, rec types.ProgressSink) *uninstall.Uninstaller {
	return uninstall.NewUninstaller(fsys, uninstall.NewValidator(fsys, nil, nil), uninstall.Collaborators{
		Confirm:  confirm,
		Log:      log,
		Progress: rec,
	})
}

func TestUninstaller_Uninstall(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithGameInstall()
	env.WithFileTree(env.GameDir, testutil.FileTree{
		"characters": testutil.FileTree{
			"monika.chr": "monika",
			"nested":     testutil.FileTree{"deep.txt": "deep"},
		},
	})
	confirm := &testutil.StaticConfirm{Answer: true}
	log := &testutil.LogRecorder{}
	rec := &testutil.ProgressRecorder{}
	u := newUninstaller(env.FS, confirm, log, rec)

	outcome, err := u.Uninstall(types.InstallTarget(env.GameDir))
	require.NoError(t, err)

	assert.Equal(t, uninstall.OutcomeCompleted, outcome)
	assert.Equal(t, uninstall.PhaseCompleted, u.Phase())
	assert.Equal(t, 1, confirm.Calls)
	testutil.AssertNotExists(t, env.FS, env.GameDir)
	testutil.AssertExists(t, env.FS, filepath.Dir(env.GameDir))

	assert.True(t, rec.Monotonic())
	assert.Equal(t, int64(100), rec.Last())
	assert.Equal(t, int64(100), rec.Max)
	for _, v := range rec.Values {
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(100))
	}
	assert.True(t, log.Contains("DDLC has been uninstalled successfully from: "+env.GameDir))
}

func TestUninstaller_Cancelled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithGameInstall()
	confirm := &testutil.StaticConfirm{Answer: false}
	log := &testutil.LogRecorder{}
	rec := &testutil.ProgressRecorder{}
	u := newUninstaller(env.FS, confirm, log, rec)

	outcome, err := u.Uninstall(types.InstallTarget(env.GameDir))
	require.NoError(t, err)

	assert.Equal(t, uninstall.OutcomeCancelled, outcome)
	assert.Equal(t, uninstall.PhaseCancelled, u.Phase())
	testutil.AssertFileContent(t, env.FS, filepath.Join(env.GameDir, "game", "scripts.rpa"), "original scripts")
	assert.Empty(t, rec.Values)
	assert.True(t, log.Contains("Uninstallation cancelled."))
}

func TestUninstaller_MissingExpectedFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	target := filepath.Join(env.Root, testutil.GameDirName)
	env.WithFileTree(target, testutil.FileTree{"keep.txt": "precious"})
	confirm := &testutil.StaticConfirm{Answer: true}
	log := &testutil.LogRecorder{}
	u := newUninstaller(env.FS, confirm, log, nil)

	_, err := u.Uninstall(types.InstallTarget(target))

	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingExpectedFiles))
	assert.Equal(t, uninstall.PhaseFailed, u.Phase())
	assert.Zero(t, confirm.Calls)
	testutil.AssertFileContent(t, env.FS, filepath.Join(target, "keep.txt"), "precious")
	assert.True(t, log.Contains("lacks expected DDLC files"))
}

func TestUninstaller_NotRecognized(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree("/tmp/empty_dir", testutil.FileTree{"game": testutil.FileTree{}})
	confirm := &testutil.StaticConfirm{Answer: true}
	log := &testutil.LogRecorder{}
	u := newUninstaller(env.FS, confirm, log, nil)

	_, err := u.Uninstall("/tmp/empty_dir")

	assert.True(t, errors.IsErrorCode(err, errors.ErrNotRecognized))
	assert.Zero(t, confirm.Calls)
	testutil.AssertExists(t, env.FS, "/tmp/empty_dir/game")
	assert.True(t, log.Contains("non-DDLC directory"))
}

func TestUninstaller_ConfirmError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithGameInstall()
	confirm := &testutil.StaticConfirm{Err: stderrors.New("stdin closed")}
	u := newUninstaller(env.FS, confirm, nil, nil)

	_, err := u.Uninstall(types.InstallTarget(env.GameDir))

	assert.Error(t, err)
	assert.Equal(t, uninstall.PhaseFailed, u.Phase())
	testutil.AssertExists(t, env.FS, env.GameDir)
}

func TestUninstaller_DeleteFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithGameInstall()
	locked := filepath.Join(env.GameDir, "game", "scripts.rpa")
	faulty := testutil.NewFaultyFS(env.FS).FailOn("remove", locked, stderrors.New("file in use"))
	rec := &testutil.ProgressRecorder{}
	log := &testutil.LogRecorder{}
	u := newUninstaller(faulty, &testutil.StaticConfirm{Answer: true}, log, rec)

	_, err := u.Uninstall(types.InstallTarget(env.GameDir))

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileDelete))
	assert.Equal(t, uninstall.PhaseFailed, u.Phase())
	testutil.AssertExists(t, env.FS, locked)
	assert.True(t, rec.Monotonic())
	assert.Less(t, rec.Last(), int64(100))
	assert.True(t, log.Contains("Error during uninstallation"))
}

func TestUninstaller_EmptyTree(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(env.GameDir, testutil.FileTree{"game": testutil.FileTree{}})
	rec := &testutil.ProgressRecorder{}
	u := newUninstaller(env.FS, &testutil.StaticConfirm{Answer: true}, nil, rec)

	outcome, err := u.Uninstall(types.InstallTarget(env.GameDir))
	require.NoError(t, err)

	assert.Equal(t, uninstall.OutcomeCompleted, outcome)
	assert.Equal(t, []int64{0, 100}, rec.Values)
	testutil.AssertNotExists(t, env.FS, env.GameDir)
}
