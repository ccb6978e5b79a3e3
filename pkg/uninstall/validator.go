package uninstall

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// DefaultNameFragments must appear somewhere in a deletable target path
var DefaultNameFragments = []string{"Doki Doki Literature Club"}

// DefaultMarkers are entries at least one of which a real install has at
// its top level
var DefaultMarkers = []string{"DDLC.exe", "DDLC.sh", "game"}

// Validator decides whether a directory looks like a game installation.
// Both checks are heuristics: a path substring and the presence of a
// marker entry. They guard deletion, they do not prove anything.
type Validator struct {
	fs            types.FS
	nameFragments []string
	markers       []string
}

// NewValidator creates a validator. Empty lists fall back to the defaults.
func NewValidator(fsys types.FS, nameFragments, markers []string) *Validator {
	if len(nameFragments) == 0 {
		nameFragments = DefaultNameFragments
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Validator{fs: fsys, nameFragments: nameFragments, markers: markers}
}

// Validate returns nil if target may be deleted, or an error coded
// ErrEmptyTarget, ErrNotRecognized or ErrMissingExpectedFiles.
func (v *Validator) Validate(target types.InstallTarget) error {
	path := strings.TrimSpace(string(target))
	if path == "" {
		return errors.New(errors.ErrEmptyTarget,
			"Game directory is empty. Please specify a valid path.")
	}

	recognised := false
	for _, fragment := range v.nameFragments {
		if strings.Contains(path, fragment) {
			recognised = true
			break
		}
	}
	if !recognised {
		return errors.New(errors.ErrNotRecognized,
			"The specified directory does not appear to be a valid DDLC installation.").
			WithDetail("path", path)
	}

	for _, marker := range v.markers {
		if _, err := v.fs.Stat(filepath.Join(path, marker)); err == nil {
			return nil
		}
	}
	return errors.New(errors.ErrMissingExpectedFiles,
		"The specified directory does not contain expected DDLC files.").
		WithDetail("path", path).
		WithDetail("markers", v.markers)
}
