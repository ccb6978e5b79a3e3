//go:build !windows

package steam

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
)

type dirRootFinder struct {
	fs         types.FS
	candidates []string
}

// NewPlatformRootFinder probes the directories Steam uses on Linux and
// macOS and returns the first that holds a steamapps folder.
func NewPlatformRootFinder(fsys types.FS) RootFinder {
	return &dirRootFinder{fs: fsys, candidates: defaultSteamDirs()}
}

func defaultSteamDirs() []string {
	return []string{
		filepath.Join(xdg.DataHome, "Steam"),
		filepath.Join(xdg.Home, ".steam", "steam"),
		filepath.Join(xdg.Home, ".steam", "root"),
		filepath.Join(xdg.Home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"),
		filepath.Join(xdg.Home, "Library", "Application Support", "Steam"),
	}
}

func (d *dirRootFinder) SteamRoot() (string, error) {
	for _, dir := range d.candidates {
		if exists(d.fs, filepath.Join(dir, "steamapps")) {
			return dir, nil
		}
	}
	return "", errors.New(errors.ErrLocator, "no Steam installation found").
		WithDetail("searched", d.candidates)
}
