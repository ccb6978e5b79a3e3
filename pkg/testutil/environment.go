// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate in-memory test environments

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// GameDirName is the installation folder name used by fixtures
const GameDirName = "Doki Doki Literature Club"

// TestEnvironment provides an in-memory filesystem with a few well-known roots
type TestEnvironment struct {
	Root      string // virtual root every fixture lives under
	Downloads string // where test archives are written
	GameDir   string // a plausible installation target
	FS        types.FS

	t *testing.T
}

// NewTestEnvironment creates a new in-memory test environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Root: "/virtual",
		FS:   NewTestFS(),
		t:    t,
	}
	env.Downloads = filepath.Join(env.Root, "downloads")
	env.GameDir = filepath.Join(env.Root, "steam", "steamapps", "common", GameDirName)

	for _, dir := range []string{env.Root, env.Downloads} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// WithFileTree creates a complete file tree structure under base
func (env *TestEnvironment) WithFileTree(base string, tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, base, tree)
}

// WithGameInstall writes a minimal installation into env.GameDir
func (env *TestEnvironment) WithGameInstall() string {
	env.t.Helper()
	env.WithFileTree(env.GameDir, FileTree{
		"DDLC.exe": "launcher",
		"DDLC.sh":  "#!/bin/sh",
		"game": FileTree{
			"scripts.rpa": "original scripts",
			"audio.rpa":   "original audio",
		},
		"renpy": FileTree{
			"__init__.py": "# renpy",
		},
	})
	return env.GameDir
}

// FileTree represents a directory structure for testing.
// Values are either file contents (string) or nested FileTree values.
type FileTree map[string]interface{}

// CreateFileTree recursively creates a file tree
func CreateFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
