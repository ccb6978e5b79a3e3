package classify

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// Rules is the static table that decides where archive entries go.
type Rules struct {
	// TargetFiles are data files routed into DataSubfolder, matched exactly
	TargetFiles []string
	// TargetDirs are directories merged into the target root, matched exactly
	TargetDirs []string
	// BundleSuffixes mark directories merged whole, such as macOS .app bundles
	BundleSuffixes []string
	// ExecutableExts are copied to the target root, matched case-insensitively
	ExecutableExts []string
	// LauncherExts mark an executable as the game's launcher
	LauncherExts  []string
	DataSubfolder string
}

// DefaultRules returns the rules for a Ren'Py game install.
func DefaultRules() Rules {
	return Rules{
		TargetFiles:    []string{"audio.rpa", "fonts.rpa", "images.rpa", "scripts.rpa"},
		TargetDirs:     []string{"game", "characters", "lib", "renpy"},
		BundleSuffixes: []string{".app"},
		ExecutableExts: []string{".exe", ".bat", ".sh", ".py"},
		LauncherExts:   []string{".exe"},
		DataSubfolder:  "game",
	}
}

// FileKind classifies a regular file by name. Executables win over data
// files.
func (r Rules) FileKind(name string) types.Kind {
	if hasExt(name, r.ExecutableExts) {
		return types.KindExecutable
	}
	if contains(r.TargetFiles, name) {
		return types.KindDataFile
	}
	return types.KindIgnore
}

// DirKind classifies a directory by name. Directories that are not merged
// are descended into, which callers express as KindIgnore.
func (r Rules) DirKind(name string) types.Kind {
	if r.IsTargetDir(name) {
		return types.KindMergeDirectory
	}
	for _, suffix := range r.BundleSuffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return types.KindMergeDirectory
		}
	}
	return types.KindIgnore
}

// IsTargetDir reports whether name is one of the payload marker directories
func (r Rules) IsTargetDir(name string) bool {
	return contains(r.TargetDirs, name)
}

// IsLauncher reports whether an executable name is a primary launcher
func (r Rules) IsLauncher(name string) bool {
	return hasExt(name, r.LauncherExts)
}

// Destination returns where an entry of the given kind lands under target.
func (r Rules) Destination(target, name string, kind types.Kind) string {
	switch kind {
	case types.KindDataFile:
		return filepath.Join(target, r.DataSubfolder, name)
	case types.KindExecutable, types.KindMergeDirectory:
		return filepath.Join(target, name)
	default:
		return ""
	}
}

func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}
