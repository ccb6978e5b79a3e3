package testutil

import (
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFileContent checks that path exists on fs with exactly want as content
func AssertFileContent(t *testing.T, fs types.FS, path, want string) {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	assert.Equal(t, want, string(data), "content of %s", path)
}

// AssertExists checks that path exists on fs
func AssertExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.NoError(t, err, "expected %s to exist", path)
}

// AssertNotExists checks that path does not exist on fs
func AssertNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.Error(t, err, "expected %s to be absent", path)
}
