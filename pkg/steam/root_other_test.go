//go:build !windows

package steam

import (
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirRootFinder(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll("/home/monika/.steam/root", 0755))
	require.NoError(t, fs.MkdirAll("/home/monika/.steam/steam/steamapps", 0755))

	finder := &dirRootFinder{fs: fs, candidates: []string{
		"/home/monika/.local/share/Steam",
		"/home/monika/.steam/root",
		"/home/monika/.steam/steam",
	}}

	root, err := finder.SteamRoot()
	require.NoError(t, err)
	assert.Equal(t, "/home/monika/.steam/steam", root)

	empty := &dirRootFinder{fs: testutil.NewTestFS(), candidates: finder.candidates}
	_, err = empty.SteamRoot()
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocator))
}
